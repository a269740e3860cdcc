package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"salon-admin/internal/model"

	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, error code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error to a response.
// Domain errors carry their own code and message; anything else is reported
// as an internal error with fallback as the message.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainStatus(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg(fallback)
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: model.ErrCodeInternalError, Message: fallback})
}

func domainStatus(code string) int {
	switch code {
	case model.ErrCodeNotFound, model.ErrCodeMembershipMissing:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// optionalQuery returns a pointer to the trimmed query value, or nil when it is empty.
func optionalQuery(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil
	}
	return &value
}

// allLocations is the location filter value meaning every location.
const allLocations = "all"

// locationFilter returns the location_id query value, or nil when it is empty or "all".
func locationFilter(r *http.Request) *string {
	location := optionalQuery(r, "location_id")
	if location != nil && strings.EqualFold(*location, allLocations) {
		return nil
	}
	return location
}

// parseDate parses a YYYY-MM-DD value in loc.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, loc)
}
