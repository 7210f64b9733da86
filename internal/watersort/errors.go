package watersort

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is returned when a caller asks a tube to remove or
	// add more units than it can, or addresses a tube that does not exist.
	// Legal pours never produce it.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrConfiguration is returned when board generation preconditions fail.
	ErrConfiguration = errors.New("configuration error")
)

// Configuration error codes.
const (
	CodeBadCapacity     = "BAD_CAPACITY"
	CodeNoColors        = "NO_COLORS"
	CodeInvalidColor    = "INVALID_COLOR"
	CodeDuplicateColor  = "DUPLICATE_COLOR"
	CodeFillMismatch    = "FILL_MISMATCH"
	CodeTooManyFilled   = "TOO_MANY_FILLED"
	CodeBadTubeCount    = "BAD_TUBE_COUNT"
	CodeUnknownColorRef = "UNKNOWN_COLOR"
)

// ConfigError describes a rejected board configuration.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(code, format string, args ...any) error {
	return &ConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}
