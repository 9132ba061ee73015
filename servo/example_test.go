package servo_test

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/servo"
	"github.com/katalvlaran/lvnoise/simplex"
)

// ExampleDriver drives one servo for a second of motion time and checks
// the writes stayed inside the channel's range.
func ExampleDriver() {
	rec := servo.NewRecorder()
	d, err := servo.NewDriver(rec, simplex.New(42), servo.WithSpeed(0.5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = d.Attach(servo.Channel{Pin: 9, MinAngle: 30, MaxAngle: 150}); err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 50; i++ {
		if err = d.Step(float64(i) * 0.02); err != nil {
			fmt.Println("error:", err)

			return
		}
	}

	inRange := true
	for _, c := range rec.Commands() {
		inRange = inRange && c.Angle >= 30 && c.Angle <= 150
	}
	fmt.Println("writes:", len(rec.Commands()), "in range:", inRange)
	// Output:
	// writes: 50 in range: true
}
