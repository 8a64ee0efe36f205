package piececube

import (
	"errors"

	"github.com/SeamusWaldron/piececube/internal/ble"
	"github.com/SeamusWaldron/piececube/internal/notation"
)

// Sentinel errors for the piececube package.
var (
	// Connection errors
	ErrNotConnected   = ble.ErrNotConnected
	ErrDeviceNotFound = ble.ErrDeviceNotFound

	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidNotation
	ErrInvalidFacelets = errors.New("piececube: invalid facelet string")
)
