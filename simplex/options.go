package simplex

// Option customizes a Generator at construction.
type Option func(*Generator)

// WithSeedSource replaces the time-derived default seed used by Init,
// NewWithDefaultSeed and lazy seeding. Panics on nil.
func WithSeedSource(fn func() uint32) Option {
	if fn == nil {
		panic("simplex: WithSeedSource(nil)")
	}
	return func(g *Generator) {
		g.seedSource = fn
	}
}
