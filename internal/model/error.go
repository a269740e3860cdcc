package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeEmptySelection    = "EMPTY_SELECTION"
	ErrCodeInvalidCoupon     = "INVALID_COUPON"
	ErrCodeMembershipMissing = "MEMBERSHIP_NOT_FOUND"
	ErrCodeInvalidDate       = "INVALID_DATE"
	ErrCodeInvalidTime       = "INVALID_TIME"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptySelection     = NewDomainError(ErrCodeEmptySelection, "At least one service or package must be selected")
	ErrInvalidCoupon      = NewDomainError(ErrCodeInvalidCoupon, "Coupon code is not valid or no longer active")
	ErrMembershipNotFound = NewDomainError(ErrCodeMembershipMissing, "Membership not found")
	ErrInvalidDate        = NewDomainError(ErrCodeInvalidDate, "Date must be formatted as YYYY-MM-DD")
	ErrInvalidTime        = NewDomainError(ErrCodeInvalidTime, "Time must be formatted as HH:MM or h:mm AM/PM")
	ErrMissingCustomer    = NewDomainError(ErrCodeMissingField, "Customer ID is required")
	ErrNotFound           = NewDomainError(ErrCodeNotFound, "Resource not found")
)
