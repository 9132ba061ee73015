// Package servo drives hobby servos from simplex noise.
//
// The noise engine knows nothing about hardware. This package is the
// boundary: an Actuator accepts a pin and an angle and forwards it to a
// platform backend; a Driver turns fBm samples into angles with a linear
// scale and writes them.
//
// Backends:
//   - Recorder — in-memory, for host runs and tests.
//   - PWM      — TinyGo boards via tinygo.org/x/drivers/servo (build tag tinygo).
//
// The backend is chosen when the Driver is constructed, not at compile time
// inside the engine.
//
//	rec := servo.NewRecorder()
//	d, _ := servo.NewDriver(rec, simplex.New(42), servo.WithSpeed(0.3))
//	_ = d.Attach(servo.Channel{Pin: 9, MaxAngle: 180})
//	_ = d.Step(elapsed.Seconds())
package servo
