package servo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvnoise/servo"
	"github.com/katalvlaran/lvnoise/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingActuator rejects every operation with err.
type failingActuator struct{ err error }

func (f failingActuator) Attach(int, servo.PulseRange) error { return f.err }
func (f failingActuator) Write(int, int) error               { return f.err }

func newDriver(t *testing.T, opts ...servo.Option) (*servo.Driver, *servo.Recorder) {
	t.Helper()
	rec := servo.NewRecorder()
	d, err := servo.NewDriver(rec, simplex.New(42), opts...)
	require.NoError(t, err)
	return d, rec
}

// TestNewDriver_NilActuator rejects a missing backend.
func TestNewDriver_NilActuator(t *testing.T) {
	_, err := servo.NewDriver(nil, simplex.New(1))
	assert.ErrorIs(t, err, servo.ErrNilActuator)
}

// TestDriver_AttachValidation covers every rejected channel shape.
func TestDriver_AttachValidation(t *testing.T) {
	cases := []struct {
		name string
		ch   servo.Channel
		err  error
	}{
		{"NegativeMin", servo.Channel{Pin: 1, MinAngle: -1, MaxAngle: 90}, servo.ErrInvalidAngleRange},
		{"MaxTooLarge", servo.Channel{Pin: 1, MinAngle: 0, MaxAngle: 181}, servo.ErrInvalidAngleRange},
		{"Inverted", servo.Channel{Pin: 1, MinAngle: 120, MaxAngle: 60}, servo.ErrInvalidAngleRange},
		{"BadPulse", servo.Channel{Pin: 1, MaxAngle: 180, Pulse: servo.PulseRange{Min: 2000, Max: 1000}}, servo.ErrInvalidPulseRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newDriver(t)
			assert.ErrorIs(t, d.Attach(tc.ch), tc.err)
			assert.Empty(t, d.Channels())
		})
	}
}

// TestDriver_AttachDefaultsAndDuplicates checks pulse defaulting and pin uniqueness.
func TestDriver_AttachDefaultsAndDuplicates(t *testing.T) {
	d, rec := newDriver(t)
	require.NoError(t, d.Attach(servo.Channel{Pin: 9, MaxAngle: 180}))

	p, ok := rec.Pulse(9)
	require.True(t, ok)
	assert.Equal(t, servo.DefaultPulse, p)

	assert.ErrorIs(t, d.Attach(servo.Channel{Pin: 9, MaxAngle: 90}), servo.ErrDuplicatePin)
	assert.Len(t, d.Channels(), 1)
}

// TestDriver_AttachActuatorError surfaces backend failures.
func TestDriver_AttachActuatorError(t *testing.T) {
	boom := errors.New("boom")
	d, err := servo.NewDriver(failingActuator{err: boom}, simplex.New(1))
	require.NoError(t, err)
	assert.ErrorIs(t, d.Attach(servo.Channel{Pin: 2, MaxAngle: 180}), boom)
}

// TestDriver_StepWritesInRange runs a few seconds of motion on two channels.
func TestDriver_StepWritesInRange(t *testing.T) {
	d, rec := newDriver(t, servo.WithSpeed(0.5))
	require.NoError(t, d.Attach(servo.Channel{Pin: 3, MinAngle: 0, MaxAngle: 180}))
	require.NoError(t, d.Attach(servo.Channel{Pin: 5, X: 100, Y: 7, MinAngle: 45, MaxAngle: 135}))

	for step := 0; step < 200; step++ {
		require.NoError(t, d.Step(float64(step)*0.05))
	}

	cmds := rec.Commands()
	require.Len(t, cmds, 400)
	for _, c := range cmds {
		switch c.Pin {
		case 3:
			assert.True(t, c.Angle >= 0 && c.Angle <= 180, "pin 3 angle %d", c.Angle)
		case 5:
			assert.True(t, c.Angle >= 45 && c.Angle <= 135, "pin 5 angle %d", c.Angle)
		default:
			t.Fatalf("unexpected pin %d", c.Pin)
		}
	}
}

// TestDriver_AngleMatchesScaledFbm checks the linear mapping against the engine.
func TestDriver_AngleMatchesScaledFbm(t *testing.T) {
	gen := simplex.New(42)
	d, err := servo.NewDriver(servo.NewRecorder(), gen, servo.WithOctaves(2), servo.WithPersistence(0.6), servo.WithSpeed(2))
	require.NoError(t, err)

	ch := servo.Channel{Pin: 4, X: 1.5, Y: -3, MinAngle: 10, MaxAngle: 170}
	for _, tm := range []float64{0, 0.25, 1, 3.5} {
		v, err := gen.ScaledFbm(ch.X+tm*2, ch.Y, 10, 170, 2, 0.6)
		require.NoError(t, err)
		want := int(math.Round(v))
		if want < 10 {
			want = 10
		} else if want > 170 {
			want = 170
		}

		got, err := d.Angle(ch, tm)
		require.NoError(t, err)
		assert.Equal(t, want, got, "t=%v", tm)
	}
}

// TestDriver_ZeroSpeedHolds: without motion the angle never changes.
func TestDriver_ZeroSpeedHolds(t *testing.T) {
	d, rec := newDriver(t, servo.WithSpeed(0))
	require.NoError(t, d.Attach(servo.Channel{Pin: 6, X: 0.3, Y: 0.9, MaxAngle: 180}))
	require.NoError(t, d.Step(0))
	first, _ := rec.Last(6)
	for i := 1; i < 10; i++ {
		require.NoError(t, d.Step(float64(i)))
		got, ok := rec.Last(6)
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
}

// TestDriver_StepJoinsErrors keeps writing after one channel fails.
func TestDriver_StepJoinsErrors(t *testing.T) {
	boom := errors.New("write failed")
	act := &flakyActuator{Recorder: servo.NewRecorder(), failPin: 1, err: boom}
	d, err := servo.NewDriver(act, simplex.New(5))
	require.NoError(t, err)
	require.NoError(t, d.Attach(servo.Channel{Pin: 1, MaxAngle: 180}))
	require.NoError(t, d.Attach(servo.Channel{Pin: 2, MaxAngle: 180}))

	err = d.Step(0.5)
	assert.ErrorIs(t, err, boom)
	_, ok := act.Last(2)
	assert.True(t, ok, "pin 2 must still be written")
}

// flakyActuator fails writes on one pin and records the rest.
type flakyActuator struct {
	*servo.Recorder
	failPin int
	err     error
}

func (f *flakyActuator) Write(pin, angle int) error {
	if pin == f.failPin {
		return f.err
	}
	return f.Recorder.Write(pin, angle)
}

// TestOptions_Panics enforces the option constructor contracts.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { servo.WithOctaves(0) })
	assert.Panics(t, func() { servo.WithPersistence(0) })
	assert.Panics(t, func() { servo.WithPersistence(math.NaN()) })
	assert.Panics(t, func() { servo.WithPersistence(math.Inf(1)) })
	assert.Panics(t, func() { servo.WithSpeed(-1) })
}
