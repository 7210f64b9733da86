// Package telemetry turns puzzle notifications into capitan signals and
// structured log lines.
package telemetry

import "github.com/zoobzio/capitan"

// Selection signals.
var (
	// TubeArmed is emitted when a tube becomes the pour source.
	TubeArmed = capitan.NewSignal(
		"watersort.tube.armed",
		"Tube armed as pour source",
	)

	// TubeDisarmed is emitted when an armed tube is released without pouring.
	TubeDisarmed = capitan.NewSignal(
		"watersort.tube.disarmed",
		"Tube selection released",
	)
)

// Pour signals.
var (
	// PourExecuted is emitted after a legal pour moved liquid.
	PourExecuted = capitan.NewSignal(
		"watersort.pour.executed",
		"Pour executed",
	)

	// PourRejected is emitted when a pour attempt was illegal.
	PourRejected = capitan.NewSignal(
		"watersort.pour.rejected",
		"Pour rejected",
	)
)

// Session signals.
var (
	// PuzzleSolved is emitted after an executed pour that leaves the board solved.
	PuzzleSolved = capitan.NewSignal(
		"watersort.puzzle.solved",
		"Puzzle solved",
	)

	// ConfigReloaded is emitted when a watched config file was reloaded.
	ConfigReloaded = capitan.NewSignal(
		"watersort.config.reloaded",
		"Configuration reloaded",
	)
)
