package servo

import "errors"

var (
	// ErrNilActuator indicates NewDriver received a nil Actuator.
	ErrNilActuator = errors.New("servo: actuator is nil")

	// ErrInvalidAngleRange indicates a channel range outside [0,180] or with
	// MinAngle > MaxAngle.
	ErrInvalidAngleRange = errors.New("servo: invalid angle range")

	// ErrInvalidPulseRange indicates a non-positive or inverted pulse range.
	ErrInvalidPulseRange = errors.New("servo: invalid pulse range")

	// ErrDuplicatePin indicates a second channel on an already attached pin.
	ErrDuplicatePin = errors.New("servo: pin already attached")

	// ErrNotAttached indicates a write to a pin that was never attached.
	ErrNotAttached = errors.New("servo: pin not attached")
)
