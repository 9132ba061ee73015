package servo

import "fmt"

// Angle limits of a standard hobby servo, in degrees.
const (
	MinAngle = 0
	MaxAngle = 180
)

// DefaultPulse matches the Arduino Servo library's 544–2400 µs range.
var DefaultPulse = PulseRange{Min: 544, Max: 2400}

// Actuator is the hardware capability the Driver writes to.
type Actuator interface {
	// Attach prepares pin for output with the given pulse range.
	Attach(pin int, pulse PulseRange) error
	// Write moves the servo on pin to angle degrees.
	Write(pin int, angle int) error
}

// PulseRange is the pulse width, in microseconds, at 0° and 180°.
type PulseRange struct {
	Min int
	Max int
}

// Validate reports ErrInvalidPulseRange for non-positive or inverted bounds.
func (p PulseRange) Validate() error {
	if p.Min <= 0 || p.Max <= p.Min {
		return fmt.Errorf("pulse [%d,%d]: %w", p.Min, p.Max, ErrInvalidPulseRange)
	}
	return nil
}

// Microseconds maps angle linearly onto the pulse range. Angles outside
// 0..180 are clamped first.
func (p PulseRange) Microseconds(angle int) int {
	angle = clamp(angle, MinAngle, MaxAngle)
	return p.Min + (p.Max-p.Min)*angle/MaxAngle
}

// Channel binds one servo to a path through noise space.
//
// X and Y offset the channel in noise space so several channels driven by
// one generator move independently. A zero Pulse means DefaultPulse.
type Channel struct {
	Pin      int
	X, Y     float64
	MinAngle int
	MaxAngle int
	Pulse    PulseRange
}

func (c Channel) validate() error {
	if c.MinAngle < MinAngle || c.MaxAngle > MaxAngle || c.MinAngle > c.MaxAngle {
		return fmt.Errorf("pin %d angles [%d,%d]: %w", c.Pin, c.MinAngle, c.MaxAngle, ErrInvalidAngleRange)
	}
	if err := c.Pulse.Validate(); err != nil {
		return fmt.Errorf("pin %d: %w", c.Pin, err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
