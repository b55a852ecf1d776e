package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("window end must be after start")

// Window is a half-open occupancy interval [start, end). An open window has
// no known end yet (exclusive-occupancy resources); openness is carried as
// an explicit flag so a missing end is never confused with a zero time.
type Window struct {
	start time.Time
	end   time.Time
	open  bool
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func NewOpenWindow(start time.Time) Window {
	return Window{start: start, open: true}
}

func (w Window) Start() time.Time { return w.start }
func (w Window) IsOpen() bool     { return w.open }

// End returns the window end and whether one is defined.
func (w Window) End() (time.Time, bool) {
	if w.open {
		return time.Time{}, false
	}
	return w.end, true
}

// Overlaps applies half-open interval semantics: touching endpoints do not
// conflict. An open end is treated as unbounded.
func (w Window) Overlaps(o Window) bool {
	wEndsBefore := !w.open && !w.end.After(o.start)
	oEndsBefore := !o.open && !o.end.After(w.start)
	return !wEndsBefore && !oEndsBefore
}

// ContainsDay reports whether any part of the window falls on the calendar
// day starting at dayStart (24h, in dayStart's location).
func (w Window) ContainsDay(dayStart time.Time) bool {
	day := Window{start: dayStart, end: dayStart.Add(24 * time.Hour)}
	return w.Overlaps(day)
}

func (w Window) String() string {
	if w.open {
		return fmt.Sprintf("[%s,)", w.start.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
