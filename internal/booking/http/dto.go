package http

import (
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/booking"
	"github.com/campusvenue/venue-booking-backend/internal/pkg/request"
	venueHttp "github.com/campusvenue/venue-booking-backend/internal/venue/http"
)

const dateLayout = "2006-01-02"

// ContactBody is the point-of-contact payload on booking requests.
type ContactBody struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateBookingRequest defines the payload for submitting a booking request.
// Duration is always minutes.
type CreateBookingRequest struct {
	VenueID         string      `json:"venue_id" binding:"required,uuid"`
	Date            string      `json:"date" binding:"required"`
	StartTime       string      `json:"start_time" binding:"required"`
	DurationMinutes int         `json:"duration_minutes" binding:"required"`
	Reason          string      `json:"reason" binding:"required"`
	Organisation    string      `json:"organisation" binding:"required"`
	Contact         ContactBody `json:"contact" binding:"required"`
}

// UpdateBookingRequest defines the fields a requester may change while the
// booking is still pending.
type UpdateBookingRequest struct {
	Date            *string      `json:"date"`
	StartTime       *string      `json:"start_time"`
	DurationMinutes *int         `json:"duration_minutes"`
	Reason          *string      `json:"reason"`
	Organisation    *string      `json:"organisation"`
	Contact         *ContactBody `json:"contact"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending accepted rejected"`
	Date    string `form:"date"`
}

// AvailabilityRequest defines query parameters for the availability check.
type AvailabilityRequest struct {
	Date            string `form:"date" binding:"required"`
	StartTime       string `form:"start_time" binding:"required"`
	DurationMinutes int    `form:"duration_minutes" binding:"required"`
}

// FeedbackRequest carries post-event feedback for a booking.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type ContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID              string             `json:"id"`
	Venue           venueHttp.VenueTag `json:"venue"`
	Date            string             `json:"date"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Reason          string             `json:"reason"`
	Organisation    string             `json:"organisation"`
	Contact         ContactResponse    `json:"contact"`
	Feedback        string             `json:"feedback,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Venue:           venueHttp.VenueTag{ID: b.VenueID, Name: b.VenueName},
		Date:            b.Date.Format(dateLayout),
		StartTime:       b.Window.StartClock(),
		EndTime:         b.Window.EndClock(),
		DurationMinutes: b.Window.DurationMinutes,
		Reason:          b.Reason,
		Organisation:    b.Organisation,
		Contact: ContactResponse{
			Name:  b.Contact.Name,
			Phone: b.Contact.Phone,
			Email: b.Contact.Email,
		},
		Feedback:  b.Feedback,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// AvailabilityResponse is the wire shape of an availability decision. The
// conflict and nearby lists are omitted when empty.
type AvailabilityResponse struct {
	Available                  bool              `json:"available"`
	Reason                     string            `json:"reason,omitempty"`
	ConflictingPendingBookings []BookingResponse `json:"conflicting_pending_bookings,omitempty"`
	NearbyBookings             []BookingResponse `json:"nearby_bookings,omitempty"`
}

func NewAvailabilityResponse(r *booking.AvailabilityResult) AvailabilityResponse {
	resp := AvailabilityResponse{
		Available: r.Available,
		Reason:    r.Reason,
	}
	for _, b := range r.ConflictingPendingBookings {
		resp.ConflictingPendingBookings = append(resp.ConflictingPendingBookings, NewBookingResponse(b))
	}
	for _, b := range r.NearbyBookings {
		resp.NearbyBookings = append(resp.NearbyBookings, NewBookingResponse(b))
	}
	return resp
}

// StatusResponse reports only the lifecycle status of a booking.
type StatusResponse struct {
	Status string `json:"status"`
}
