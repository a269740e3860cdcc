package handler

import (
	"net/http"
	"strconv"
	"time"

	"salon-admin/internal/model"
	"salon-admin/internal/schedule"

	"github.com/rs/zerolog"
)

// HourLabel is one row label of the day grid.
type HourLabel struct {
	Hour   int     `json:"hour"`
	Label  string  `json:"label"`
	Offset float64 `json:"offset"`
}

// GridResponse describes the day grid of the bookings calendar.
type GridResponse struct {
	Date          string      `json:"date"`
	Day           string      `json:"day"`
	StartHour     int         `json:"startHour"`
	EndHour       int         `json:"endHour"`
	PixelsPerHour float64     `json:"pixelsPerHour"`
	Hours         []HourLabel `json:"hours"`
	IsToday       bool        `json:"isToday"`
	NowPosition   *float64    `json:"nowPosition,omitempty"`
	Slot          *GridSlot   `json:"slot,omitempty"`
}

// GridSlot is the booking start picked by clicking the grid at Offset pixels.
type GridSlot struct {
	Offset   float64 `json:"offset"`
	Hour     float64 `json:"hour"`
	Label    string  `json:"label"`
	DateTime string  `json:"dateTime"`
}

// ScheduleHandler serves the calendar grid layout.
type ScheduleHandler struct {
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(location *time.Location, logger zerolog.Logger) *ScheduleHandler {
	if location == nil {
		location = time.UTC
	}
	return &ScheduleHandler{
		location: location,
		now:      time.Now,
		logger:   logger.With().Str("handler", "schedule").Logger(),
	}
}

// Grid handles GET /api/schedule/grid[?date=YYYY-MM-DD][&offset=px] requests.
// The now-line position is only reported for today inside business hours.
// With offset, the clicked position is snapped to the quarter hour and returned as a slot.
func (h *ScheduleHandler) Grid(w http.ResponseWriter, r *http.Request) {
	now := h.now().In(h.location)
	day := schedule.BeginningOfDay(now)

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := parseDate(dateStr, h.location)
		if err != nil {
			writeServiceError(w, model.ErrInvalidDate, "", h.logger)
			return
		}
		day = parsed
	}

	hours := schedule.HourLabels()
	resp := GridResponse{
		Date:          day.Format(dateLayout),
		Day:           schedule.FormatDay(day),
		StartHour:     schedule.StartHour,
		EndHour:       schedule.EndHour,
		PixelsPerHour: schedule.PixelsPerHour,
		Hours:         make([]HourLabel, 0, len(hours)),
		IsToday:       schedule.IsSameDay(day, now),
	}
	for _, hour := range hours {
		resp.Hours = append(resp.Hours, HourLabel{
			Hour:   hour,
			Label:  schedule.FormatTime(float64(hour)),
			Offset: float64(hour-schedule.StartHour) * schedule.PixelsPerHour,
		})
	}

	if resp.IsToday {
		if pos, ok := schedule.NowPosition(now); ok {
			resp.NowPosition = &pos
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		slot, err := gridSlot(day, offsetStr)
		if err != nil {
			writeServiceError(w, model.ErrInvalidTime, "", h.logger)
			return
		}
		resp.Slot = slot
	}

	writeJSON(w, http.StatusOK, resp)
}

// gridSlot converts a click offset into a slot on day. Offsets outside
// business hours are rejected.
func gridSlot(day time.Time, offsetStr string) (*GridSlot, error) {
	offset, err := strconv.ParseFloat(offsetStr, 64)
	if err != nil {
		return nil, err
	}

	hour := schedule.TimeAtOffset(offset)
	if hour < schedule.StartHour || hour >= schedule.EndHour {
		return nil, model.ErrInvalidTime
	}

	label := schedule.FormatTime(hour)
	clock, err := schedule.To24HourFormat(label)
	if err != nil {
		return nil, err
	}

	return &GridSlot{
		Offset:   offset,
		Hour:     hour,
		Label:    label,
		DateTime: schedule.FormatDateTime(day, clock),
	}, nil
}
