package servo

import (
	"fmt"
	"sync"
)

// Command is one recorded Write.
type Command struct {
	Pin   int
	Angle int
}

// Recorder is an in-memory Actuator. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	attached map[int]PulseRange
	last     map[int]int
	log      []Command
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		attached: make(map[int]PulseRange),
		last:     make(map[int]int),
	}
}

// Attach records pin with its pulse range.
func (r *Recorder) Attach(pin int, pulse PulseRange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attached[pin] = pulse
	return nil
}

// Write records the command; ErrNotAttached if pin is unknown.
func (r *Recorder) Write(pin int, angle int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attached[pin]; !ok {
		return fmt.Errorf("Recorder.Write: pin %d: %w", pin, ErrNotAttached)
	}
	r.last[pin] = angle
	r.log = append(r.log, Command{Pin: pin, Angle: angle})
	return nil
}

// Commands returns a copy of every recorded write, oldest first.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.log))
	copy(out, r.log)
	return out
}

// Last returns the most recent angle written to pin.
func (r *Recorder) Last(pin int) (angle int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	angle, ok = r.last[pin]
	return angle, ok
}

// Pulse returns the pulse range pin was attached with.
func (r *Recorder) Pulse(pin int) (PulseRange, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.attached[pin]
	return p, ok
}
