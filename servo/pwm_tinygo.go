//go:build tinygo

package servo

import (
	"fmt"
	"machine"

	tgservo "tinygo.org/x/drivers/servo"
)

// PWM is an Actuator backed by a TinyGo PWM peripheral. All servos attached
// to one PWM share its timer, so they must sit on pins that timer serves.
type PWM struct {
	timer  tgservo.PWM
	servos map[int]pwmServo
}

type pwmServo struct {
	dev   tgservo.Servo
	pulse PulseRange
}

// NewPWM returns an Actuator using timer, e.g. machine.TCC0 or machine.PWM1.
func NewPWM(timer tgservo.PWM) *PWM {
	return &PWM{timer: timer, servos: make(map[int]pwmServo)}
}

// Attach configures pin as a 50 Hz servo output.
func (p *PWM) Attach(pin int, pulse PulseRange) error {
	if err := pulse.Validate(); err != nil {
		return fmt.Errorf("PWM.Attach: pin %d: %w", pin, err)
	}
	dev, err := tgservo.New(p.timer, machine.Pin(pin))
	if err != nil {
		return fmt.Errorf("PWM.Attach: pin %d: %w", pin, err)
	}
	p.servos[pin] = pwmServo{dev: dev, pulse: pulse}
	return nil
}

// Write sets the pulse width for angle on pin.
func (p *PWM) Write(pin int, angle int) error {
	s, ok := p.servos[pin]
	if !ok {
		return fmt.Errorf("PWM.Write: pin %d: %w", pin, ErrNotAttached)
	}
	s.dev.SetMicroseconds(int16(s.pulse.Microseconds(angle)))
	return nil
}
