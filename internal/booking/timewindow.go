package booking

import (
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// clockLayouts are the accepted wall-clock formats for a window start time.
// Callers submit both 24-hour and 12-hour forms.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
}

// TimeWindow is the half-open interval [start, start+duration) on some
// calendar date, expressed in minutes since midnight. Duration is always
// minutes; there is no hours form anywhere past the API boundary.
type TimeWindow struct {
	StartMinutes    int
	DurationMinutes int
}

// NewTimeWindow parses a wall-clock start string and pairs it with a
// duration. The duration must be positive.
func NewTimeWindow(start string, durationMinutes int) (TimeWindow, error) {
	if durationMinutes <= 0 {
		return TimeWindow{}, ErrInvalidDuration
	}

	startMinutes, err := parseClock(start)
	if err != nil {
		return TimeWindow{}, err
	}

	return TimeWindow{
		StartMinutes:    startMinutes,
		DurationMinutes: durationMinutes,
	}, nil
}

// End returns the exclusive end of the window in minutes since midnight.
// It may exceed 24h for windows running past midnight.
func (w TimeWindow) End() int {
	return w.StartMinutes + w.DurationMinutes
}

// Overlaps reports whether two windows share at least one instant, using
// half-open semantics: a window ending at 10:00 does not overlap one
// starting at 10:00.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.StartMinutes < other.End() && other.StartMinutes < w.End()
}

// Covers reports whether the given minute falls inside the window,
// inclusive on both ends. This is the containment test the advisory
// nearby-booking buffer uses; it is deliberately looser than Overlaps.
func (w TimeWindow) Covers(minute int) bool {
	return minute >= w.StartMinutes && minute <= w.End()
}

// StartClock formats the window start as 24-hour "HH:MM".
func (w TimeWindow) StartClock() string {
	return formatClock(w.StartMinutes)
}

// EndClock formats the window end as 24-hour "HH:MM", wrapping past
// midnight.
func (w TimeWindow) EndClock() string {
	return formatClock(w.End() % minutesPerDay)
}

// parseClock converts a wall-clock string to minutes since midnight. The
// AM/PM marker is matched case-insensitively.
func parseClock(s string) (int, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		return t.Hour()*60 + t.Minute(), nil
	}
	return 0, ErrInvalidTimeFormat
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
