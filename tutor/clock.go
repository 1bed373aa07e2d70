package tutor

import "time"

// Clock abstracts one-shot timer scheduling so playback can be driven by a
// deterministic fake clock in tests.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is an armed one-shot callback.
type Timer interface {
	Stop() bool
}

type realClock struct{}

// NewClock returns the wall-clock implementation backed by time.AfterFunc.
func NewClock() Clock {
	return realClock{}
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
