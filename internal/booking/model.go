package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrVenueNotFound       = apperror.New(http.StatusNotFound, "venue not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "venue already booked for the requested window")
	ErrAlreadyDecided      = apperror.New(http.StatusConflict, "booking has already been decided")
	ErrNotEditable         = apperror.New(http.StatusConflict, "only pending bookings can be edited")
	ErrInvalidTimeFormat   = apperror.New(http.StatusBadRequest, "start time must be a valid clock time (e.g. 14:00 or 2:00 PM)")
	ErrInvalidDuration     = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrDateInPast          = apperror.New(http.StatusBadRequest, "cannot request a booking for a past date")
	ErrInvalidContactEmail = apperror.New(http.StatusBadRequest, "please use your institute email address")
	ErrInvalidContactPhone = apperror.New(http.StatusBadRequest, "please provide a valid 10-digit phone number")
	ErrEmptyFeedback       = apperror.New(http.StatusBadRequest, "feedback cannot be empty")

	// ErrInconsistentBookingSet is returned when a stored booking carries a
	// status outside the known lifecycle. The availability check fails
	// closed: no partial result is computed from a corrupt snapshot.
	ErrInconsistentBookingSet = apperror.New(http.StatusUnprocessableEntity, "booking set contains an unknown status")
)

// Status is the lifecycle state of a booking request. A booking is created
// pending and transitions to accepted or rejected exactly once; rejected is
// terminal and inert for scheduling.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known lifecycle status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Contact is the point of contact responsible for a booking request.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Booking is a request to occupy a venue for a time window on a date.
type Booking struct {
	ID           string
	VenueID      string
	VenueName    string
	Date         time.Time // calendar date, midnight UTC
	Window       TimeWindow
	Reason       string
	Organisation string
	Contact      Contact
	Feedback     string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	VenueID  string
	Status   string
	Date     *time.Time
	Page     int
	PageSize int
}

// Notifier is the capability for telling humans about booking events. It is
// injected into the service; implementations live elsewhere (the SendGrid
// mailer) and report failure to the caller rather than writing any response
// themselves.
type Notifier interface {
	// BookingRequested notifies the administrator that a new request needs
	// a decision.
	BookingRequested(ctx context.Context, b *Booking) error

	// BookingDecided notifies the requester that their booking was accepted
	// or rejected.
	BookingDecided(ctx context.Context, b *Booking) error
}
