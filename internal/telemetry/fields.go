package telemetry

import "github.com/zoobzio/capitan"

// Field keys for puzzle events.
var (
	// KeySession identifies the player session (SSH user or "local").
	KeySession = capitan.NewStringKey("session")

	// KeyLevel is the level being played.
	KeyLevel = capitan.NewStringKey("level")

	// KeyTube is the tube index for arm and disarm events.
	KeyTube = capitan.NewIntKey("tube")

	// KeySource is the pour source tube index.
	KeySource = capitan.NewIntKey("source")

	// KeyTarget is the pour target tube index.
	KeyTarget = capitan.NewIntKey("target")

	// KeyColor is the poured color name.
	KeyColor = capitan.NewStringKey("color")

	// KeyCount is the number of units poured.
	KeyCount = capitan.NewIntKey("count")

	// KeyReason is why a pour was rejected.
	KeyReason = capitan.NewStringKey("reason")

	// KeyMoves is the executed pour count at solve time.
	KeyMoves = capitan.NewIntKey("moves")

	// KeyElapsed is the time from deal to solve.
	KeyElapsed = capitan.NewDurationKey("elapsed")

	// KeyPath is the reloaded config file.
	KeyPath = capitan.NewStringKey("path")

	// KeyError is the error message when a reload failed.
	KeyError = capitan.NewStringKey("error")
)
