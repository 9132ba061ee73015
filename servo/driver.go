// SPDX-License-Identifier: MIT
// Package: lvnoise/servo
//
// driver.go — noise-to-angle mapping.
//
// For channel c at motion time t:
//
//	v     = ScaledFbm(c.X + t·speed, c.Y, c.MinAngle, c.MaxAngle, octaves, persistence)
//	angle = clamp(round(v), c.MinAngle, c.MaxAngle)
//
// fBm is only nominally bounded, so the clamp keeps hardware inside the
// configured range.

package servo

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnoise/simplex"
)

// Driver writes noise-driven angles to the channels attached to it.
// It is not safe for concurrent use.
type Driver struct {
	act      Actuator
	gen      *simplex.Generator
	cfg      driverConfig
	channels []Channel
}

// NewDriver binds act to gen. A nil gen selects simplex.Default().
func NewDriver(act Actuator, gen *simplex.Generator, opts ...Option) (*Driver, error) {
	if act == nil {
		return nil, fmt.Errorf("NewDriver: %w", ErrNilActuator)
	}
	if gen == nil {
		gen = simplex.Default()
	}
	return &Driver{act: act, gen: gen, cfg: newDriverConfig(opts...)}, nil
}

// Attach validates ch, attaches its pin on the actuator and adds it to the
// set Step updates.
func (d *Driver) Attach(ch Channel) error {
	if ch.Pulse == (PulseRange{}) {
		ch.Pulse = DefaultPulse
	}
	if err := ch.validate(); err != nil {
		return fmt.Errorf("Attach: %w", err)
	}
	for _, c := range d.channels {
		if c.Pin == ch.Pin {
			return fmt.Errorf("Attach: pin %d: %w", ch.Pin, ErrDuplicatePin)
		}
	}
	if err := d.act.Attach(ch.Pin, ch.Pulse); err != nil {
		return fmt.Errorf("Attach: pin %d: %w", ch.Pin, err)
	}
	d.channels = append(d.channels, ch)
	return nil
}

// Channels returns a copy of the attached channels in attach order.
func (d *Driver) Channels() []Channel {
	out := make([]Channel, len(d.channels))
	copy(out, d.channels)
	return out
}

// Angle computes the angle for ch at motion time t without writing it.
func (d *Driver) Angle(ch Channel, t float64) (int, error) {
	v, err := d.gen.ScaledFbm(ch.X+t*d.cfg.speed, ch.Y,
		float64(ch.MinAngle), float64(ch.MaxAngle), d.cfg.octaves, d.cfg.persistence)
	if err != nil {
		return 0, fmt.Errorf("Angle: pin %d: %w", ch.Pin, err)
	}
	return clamp(int(math.Round(v)), ch.MinAngle, ch.MaxAngle), nil
}

// Step writes the angle for motion time t to every channel. A failing
// channel does not stop the others; all failures are joined.
func (d *Driver) Step(t float64) error {
	var errs []error
	for _, ch := range d.channels {
		a, err := d.Angle(ch, t)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = d.act.Write(ch.Pin, a); err != nil {
			errs = append(errs, fmt.Errorf("Step: pin %d: %w", ch.Pin, err))
		}
	}
	return errors.Join(errs...)
}
