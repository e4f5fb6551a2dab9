package venue

import (
	"net/http"
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "venue not found")
	ErrAlreadyExists = apperror.New(http.StatusConflict, "venue already exists")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "venue name cannot be empty")
	ErrBadCapacity   = apperror.New(http.StatusBadRequest, "seating capacity must be positive")
)

// Venue is a bookable physical space with fixed attributes.
type Venue struct {
	ID                 string
	Name               string
	Location           string
	SeatingCapacity    int
	ACAvailable        bool
	ProjectorAvailable bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	Name        string
	MinCapacity int
	Page        int
	PageSize    int
}
