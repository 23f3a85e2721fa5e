package rubixcube

import "math/rand/v2"

// Option configures Scrambled.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	strategy Strategy
}

func defaultConfig() *config {
	return &config{
		strategy: StrategyAdvance,
	}
}

// WithRand sets the random source used for the scramble.
// Pass a seeded source to get a reproducible cube. When unset, every call
// seeds its own source.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithStrategy selects how colours are assigned to cells.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}
