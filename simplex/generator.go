// SPDX-License-Identifier: MIT
// Package: lvnoise/simplex
//
// generator.go — Generator state machine and seeding.
//
// States:
//   • Unseeded — zero value; no table yet.
//   • Seeded   — a *perm.Table is published. Reseeding publishes a new one.
//
// Publication is a single atomic pointer store, so Perm and PermMod12
// always change together and concurrent readers see either the old or the
// new table, never a mix.

package simplex

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/lvnoise/perm"
)

// State is the seeding state of a Generator.
type State int

const (
	// Unseeded means no permutation table has been built yet.
	Unseeded State = iota
	// Seeded means a permutation table is in place.
	Seeded
)

// String returns "Unseeded" or "Seeded".
func (s State) String() string {
	if s == Seeded {
		return "Seeded"
	}
	return "Unseeded"
}

// Generator is an independently seeded simplex noise instance.
//
// The zero value is ready to use but Unseeded: the first Noise or Fbm call
// seeds it from the default seed source (the current time unless
// WithSeedSource was applied). That is the only side effect of evaluation.
//
// A Generator is safe for concurrent use. It must not be copied after
// first use.
type Generator struct {
	table      atomic.Pointer[perm.Table]
	seedSource func() uint32
}

// New returns a Generator seeded with seed.
func New(seed uint32, opts ...Option) *Generator {
	g := newGenerator(opts)
	g.InitWithSeed(seed)

	return g
}

// NewWithDefaultSeed returns a Generator seeded from its default seed
// source. Without WithSeedSource the result is not reproducible.
func NewWithDefaultSeed(opts ...Option) *Generator {
	g := newGenerator(opts)
	g.Init()

	return g
}

func newGenerator(opts []Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Init reseeds g from its default seed source. Calling it again reshuffles
// again.
func (g *Generator) Init() {
	g.InitWithSeed(g.defaultSeed())
}

// InitWithSeed builds and publishes the tables for seed.
func (g *Generator) InitWithSeed(seed uint32) {
	t := perm.Build(seed)
	g.table.Store(&t)
}

// Reseed replaces the tables with those for seed. It is InitWithSeed under
// the name callers use once the generator is already running.
func (g *Generator) Reseed(seed uint32) {
	g.InitWithSeed(seed)
}

// State reports whether g has been seeded.
func (g *Generator) State() State {
	if g.table.Load() == nil {
		return Unseeded
	}
	return Seeded
}

// Seed returns the seed of the current tables; ok is false while Unseeded.
func (g *Generator) Seed() (seed uint32, ok bool) {
	t := g.table.Load()
	if t == nil {
		return 0, false
	}
	return t.Seed, true
}

// Table returns a copy of the current tables; ok is false while Unseeded.
// It never triggers seeding.
func (g *Generator) Table() (t perm.Table, ok bool) {
	p := g.table.Load()
	if p == nil {
		return perm.Table{}, false
	}
	return *p, true
}

// tables returns the published table, seeding lazily on first use.
// Concurrent first calls race on a compare-and-swap; the loser adopts the
// winner's table.
func (g *Generator) tables() *perm.Table {
	if t := g.table.Load(); t != nil {
		return t
	}

	t := perm.Build(g.defaultSeed())
	if g.table.CompareAndSwap(nil, &t) {
		return &t
	}
	return g.table.Load()
}

func (g *Generator) defaultSeed() uint32 {
	if g.seedSource != nil {
		return g.seedSource()
	}
	return timeSeed()
}

// timeSeed folds the wall clock in nanoseconds into 32 bits.
func timeSeed() uint32 {
	ns := uint64(time.Now().UnixNano())
	return uint32(ns ^ ns>>32)
}
