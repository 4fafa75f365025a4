package domain

import "time"

// TimeWindow represents a half-open time interval [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the window has a positive duration
func (w TimeWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

// Overlaps returns true if two windows actually intersect.
// Windows that merely touch at an endpoint do not overlap:
// [10:00, 12:00) and [12:00, 13:00) share a boundary but no time.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Duration returns the length of the window
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
