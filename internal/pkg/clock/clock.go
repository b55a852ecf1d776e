package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Frozen is a manually advanced clock for tests.
type Frozen struct {
	current time.Time
}

func NewFrozen(t time.Time) *Frozen {
	return &Frozen{current: t}
}

func (f *Frozen) Now() time.Time {
	return f.current
}

func (f *Frozen) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
