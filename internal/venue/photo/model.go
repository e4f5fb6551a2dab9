package photo

import (
	"net/http"
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "uploaded file must be an image")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrFileTooLarge = apperror.New(http.StatusRequestEntityTooLarge, "uploaded file is too large")
)

// Photo is an image attached to a venue.
type Photo struct {
	ID            string
	VenueID       string
	Filename      string
	StoragePath   string  // internal, never exposed
	ThumbnailPath *string // internal, never exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for downloading a photo by its ID.
func URL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
