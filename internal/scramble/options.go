package scramble

import "math/rand/v2"

// Option configures a Scrambler.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	avoidRepeats bool
}

func defaultConfig() *config {
	return &config{
		avoidRepeats: false,
	}
}

// WithSeed makes the scramble sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r as the source of randomness.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithAvoidRepeats stops two successive moves turning the same face.
// Off by default: every move is an independent uniform draw.
func WithAvoidRepeats(enabled bool) Option {
	return func(c *config) {
		c.avoidRepeats = enabled
	}
}
