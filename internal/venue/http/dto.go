package http

import (
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/pkg/request"
	"github.com/campusvenue/venue-booking-backend/internal/venue"
)

// ListVenuesRequest defines query parameters for listing venues.
type ListVenuesRequest struct {
	request.ListParams
	Name        string `form:"name"`
	MinCapacity int    `form:"min_capacity" binding:"omitempty,min=1"`
}

type VenueResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	SeatingCapacity    int       `json:"seating_capacity"`
	ACAvailable        bool      `json:"ac_available"`
	ProjectorAvailable bool      `json:"projector_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VenueTag is a brief representation of a venue for embedding in other
// responses.
type VenueTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Location:           v.Location,
		SeatingCapacity:    v.SeatingCapacity,
		ACAvailable:        v.ACAvailable,
		ProjectorAvailable: v.ProjectorAvailable,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type CreateVenueRequest struct {
	Name               string `json:"name" binding:"required"`
	Location           string `json:"location" binding:"required"`
	SeatingCapacity    int    `json:"seating_capacity" binding:"required,min=1"`
	ACAvailable        bool   `json:"ac_available"`
	ProjectorAvailable bool   `json:"projector_available"`
}

type UpdateVenueRequest struct {
	Name               *string `json:"name"`
	Location           *string `json:"location"`
	SeatingCapacity    *int    `json:"seating_capacity" binding:"omitempty,min=1"`
	ACAvailable        *bool   `json:"ac_available"`
	ProjectorAvailable *bool   `json:"projector_available"`
}
