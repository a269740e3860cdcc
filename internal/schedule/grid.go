package schedule

import (
	"math"
	"time"
)

// Business hours shown on the day grid.
const (
	StartHour     = 8
	EndHour       = 20
	TotalHours    = EndHour - StartHour
	PixelsPerHour = 60
)

// HourLabels returns the integer hours labelled on the left column of the grid.
func HourLabels() []int {
	labels := make([]int, TotalHours)
	for i := range labels {
		labels[i] = StartHour + i
	}
	return labels
}

// FractionalHour returns t's wall-clock hour including minutes as a fraction.
func FractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// NowPosition returns the pixel offset of the "now" line for t.
// It reports false when t falls outside business hours.
func NowPosition(t time.Time) (float64, bool) {
	current := FractionalHour(t)
	if current < StartHour || current > EndHour {
		return 0, false
	}
	return (current - StartHour) * PixelsPerHour, true
}

// TimeAtOffset converts a vertical offset in the grid to an hour snapped to the quarter hour.
func TimeAtOffset(offsetY float64) float64 {
	clicked := StartHour + offsetY/PixelsPerHour
	return math.Round(clicked*4) / 4
}

// FormatDay formats t as "Tue 11 Feb".
func FormatDay(t time.Time) string {
	return t.Format("Mon 2 Jan")
}

// FormatDateTime joins a date and an "HH:MM" time as "2006-01-02 HH:MM".
func FormatDateTime(date time.Time, clock string) string {
	return date.Format("2006-01-02") + " " + clock
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeginningOfDay returns midnight of t's day in t's location.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayBounds returns the half-open range [start of day, start of next day) containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := BeginningOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// At combines a calendar day with an hour and minute in the same location.
func At(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}
