package servo

import (
	"math"

	"github.com/katalvlaran/lvnoise/simplex"
)

// Option customizes a Driver.
type Option func(*driverConfig)

type driverConfig struct {
	octaves     int
	persistence float64
	speed       float64
}

const defaultSpeed = 1.0

func newDriverConfig(opts ...Option) driverConfig {
	cfg := driverConfig{
		octaves:     simplex.DefaultOctaves,
		persistence: simplex.DefaultPersistence,
		speed:       defaultSpeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOctaves sets the fBm octave count. Panics if n <= 0.
func WithOctaves(n int) Option {
	if n <= 0 {
		panic("servo: WithOctaves(n<=0)")
	}
	return func(c *driverConfig) {
		c.octaves = n
	}
}

// WithPersistence sets the fBm persistence. Panics unless p is positive
// and finite.
func WithPersistence(p float64) Option {
	if !(p > 0) || math.IsInf(p, 1) {
		panic("servo: WithPersistence(p<=0 or +Inf)")
	}
	return func(c *driverConfig) {
		c.persistence = p
	}
}

// WithSpeed sets how far along X the noise is sampled per second of
// motion time. Larger values move faster. Panics if s < 0.
func WithSpeed(s float64) Option {
	if s < 0 {
		panic("servo: WithSpeed(s<0)")
	}
	return func(c *driverConfig) {
		c.speed = s
	}
}
