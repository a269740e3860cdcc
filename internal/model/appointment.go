package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses.
const (
	StatusBooked    = "booked"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
)

// Appointment is a customer visit made of one or more bookings.
type Appointment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID string    `json:"customer_id" db:"customer_id"`
	LocationID *string   `json:"location_id,omitempty" db:"location_id"`
	StartTime  time.Time `json:"start_time" db:"start_time"`
	EndTime    time.Time `json:"end_time" db:"end_time"`
	Status     string    `json:"status" db:"status"`
	TotalPrice float64   `json:"total_price" db:"total_price"`
	Discount   float64   `json:"discount" db:"discount"`
	CouponID   *string   `json:"coupon_id,omitempty" db:"coupon_id"`
	Bookings   []Booking `json:"bookings"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	CustomerName string `json:"customer_name,omitempty"`
}

// Booking is one service or package line of an appointment.
type Booking struct {
	ID            uuid.UUID `json:"id" db:"id"`
	AppointmentID uuid.UUID `json:"appointment_id" db:"appointment_id"`
	ServiceID     *string   `json:"service_id,omitempty" db:"service_id"`
	PackageID     *string   `json:"package_id,omitempty" db:"package_id"`
	EmployeeID    *string   `json:"employee_id,omitempty" db:"employee_id"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	PricePaid     float64   `json:"price_paid" db:"price_paid"`
	Status        string    `json:"status" db:"status"`

	ServiceName  string `json:"service_name,omitempty"`
	PackageName  string `json:"package_name,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}

// AppointmentSummary is the dashboard view of an appointment.
type AppointmentSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	CustomerName string    `json:"customerName,omitempty"`
	StylistName  string    `json:"stylistName,omitempty"`
	StartTime    time.Time `json:"startTime"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
}

// BookingRequest submits a checkout selection as an appointment.
type BookingRequest struct {
	QuoteRequest
	CustomerID string  `json:"customerId"`
	LocationID *string `json:"locationId,omitempty"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"` // HH:MM or h:mm AM/PM
}

// BookingResponse is returned after an appointment was stored.
type BookingResponse struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Quote         *Quote    `json:"quote"`
}
