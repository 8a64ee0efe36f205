package piececube

import "github.com/SeamusWaldron/piececube/internal/facelet"

// Option configures a Cube.
type Option func(*config)

type config struct {
	scheme      facelet.Scheme
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		scheme:      facelet.Standard,
		moveHistory: true,
	}
}

// WithScheme sets the center colors used for facelet output. The default
// is white up, green front.
func WithScheme(scheme facelet.Scheme) Option {
	return func(c *config) {
		c.scheme = scheme
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are kept and returned by Moves.
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
