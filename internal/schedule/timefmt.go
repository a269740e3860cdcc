package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTime formats a fractional hour as "h:mmam" or "h:mmpm".
func FormatTime(hour float64) string {
	h := int(math.Floor(hour))
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d:%02d%s", displayHour(h), m, period(h, false))
}

// FormatTimeString formats a 24-hour "HH:MM" string as "h:mm AM" or "h:mm PM".
func FormatTimeString(value string) string {
	if value == "" {
		return ""
	}
	h, m, err := parseClock(value)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d:%02d %s", displayHour(h), m, period(h, true))
}

// To24HourFormat converts "h:mm AM", "h:mm pm" or "h:mmpm" to "HH:MM".
// A value without a period is taken as already being on the 24-hour clock.
func To24HourFormat(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	clock := value
	suffix := ""
	lower := strings.ToLower(value)
	if strings.HasSuffix(lower, "am") || strings.HasSuffix(lower, "pm") {
		suffix = lower[len(lower)-2:]
		clock = strings.TrimSpace(value[:len(value)-2])
	}

	h, m, err := parseClock(clock)
	if err != nil {
		return "", err
	}

	switch {
	case suffix == "pm" && h < 12:
		h += 12
	case suffix == "am" && h == 12:
		h = 0
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// ParseClock parses "HH:MM" or "h:mm AM/PM" into hour and minute.
func ParseClock(value string) (int, int, error) {
	normalised, err := To24HourFormat(value)
	if err != nil {
		return 0, 0, err
	}
	if normalised == "" {
		return 0, 0, fmt.Errorf("empty time value")
	}
	return parseClock(normalised)
}

// FormatDuration formats minutes as "45 min", "1 hr" or "1 hr 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%d hr", h)
	}
	return fmt.Sprintf("%d hr %d min", h, m)
}

func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected hours and minutes", value)
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", value, err)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", value)
	}

	return h, m, nil
}

func displayHour(h int) int {
	d := h % 12
	if d == 0 {
		return 12
	}
	return d
}

func period(h int, upper bool) string {
	p := "am"
	if h >= 12 {
		p = "pm"
	}
	if upper {
		return strings.ToUpper(p)
	}
	return p
}
