package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		duration  int
		wantStart int
		wantErr   error
	}{
		{name: "24-hour clock", start: "14:00", duration: 60, wantStart: 14 * 60},
		{name: "24-hour clock with seconds", start: "09:30:00", duration: 45, wantStart: 9*60 + 30},
		{name: "12-hour clock with space", start: "2:00 PM", duration: 60, wantStart: 14 * 60},
		{name: "12-hour clock without space", start: "2:00PM", duration: 60, wantStart: 14 * 60},
		{name: "lowercase meridiem", start: "11:15 am", duration: 30, wantStart: 11*60 + 15},
		{name: "surrounding whitespace", start: "  08:00  ", duration: 30, wantStart: 8 * 60},
		{name: "midnight", start: "00:00", duration: 15, wantStart: 0},
		{name: "garbage", start: "half past nine", duration: 60, wantErr: ErrInvalidTimeFormat},
		{name: "empty start", start: "", duration: 60, wantErr: ErrInvalidTimeFormat},
		{name: "zero duration", start: "14:00", duration: 0, wantErr: ErrInvalidDuration},
		{name: "negative duration", start: "14:00", duration: -30, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewTimeWindow(tt.start, tt.duration)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.StartMinutes)
			assert.Equal(t, tt.duration, w.DurationMinutes)
		})
	}
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := TimeWindow{StartMinutes: 14 * 60, DurationMinutes: 60} // 14:00-15:00

	tests := []struct {
		name  string
		other TimeWindow
		want  bool
	}{
		{name: "identical", other: TimeWindow{StartMinutes: 14 * 60, DurationMinutes: 60}, want: true},
		{name: "contained", other: TimeWindow{StartMinutes: 14*60 + 15, DurationMinutes: 15}, want: true},
		{name: "overlapping tail", other: TimeWindow{StartMinutes: 14*60 + 30, DurationMinutes: 60}, want: true},
		{name: "overlapping head", other: TimeWindow{StartMinutes: 13*60 + 30, DurationMinutes: 60}, want: true},
		{name: "touching before", other: TimeWindow{StartMinutes: 13 * 60, DurationMinutes: 60}, want: false},
		{name: "touching after", other: TimeWindow{StartMinutes: 15 * 60, DurationMinutes: 60}, want: false},
		{name: "disjoint", other: TimeWindow{StartMinutes: 9 * 60, DurationMinutes: 60}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestTimeWindowCovers(t *testing.T) {
	w := TimeWindow{StartMinutes: 10 * 60, DurationMinutes: 60} // 10:00-11:00

	assert.True(t, w.Covers(10*60), "start is covered")
	assert.True(t, w.Covers(11*60), "end is covered (inclusive)")
	assert.True(t, w.Covers(10*60+30))
	assert.False(t, w.Covers(10*60-1))
	assert.False(t, w.Covers(11*60+1))
}

func TestTimeWindowClocks(t *testing.T) {
	w := TimeWindow{StartMinutes: 9*60 + 5, DurationMinutes: 90}
	assert.Equal(t, "09:05", w.StartClock())
	assert.Equal(t, "10:35", w.EndClock())

	// A window running past midnight wraps its end clock.
	late := TimeWindow{StartMinutes: 23 * 60, DurationMinutes: 120}
	assert.Equal(t, "23:00", late.StartClock())
	assert.Equal(t, "01:00", late.EndClock())
	assert.Equal(t, 25*60, late.End())
}
