package http

import (
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/venue/photo"
)

type PhotoResponse struct {
	ID           string    `json:"id"`
	VenueID      string    `json:"venue_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		VenueID:     p.VenueID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		resp.ThumbnailURL = photo.ThumbnailURL(p.ID)
	}
	return resp
}
