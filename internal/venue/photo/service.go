package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusvenue/venue-booking-backend/internal/pkg/storage"
	"github.com/campusvenue/venue-booking-backend/internal/venue"
)

const (
	maxPhotoBytes  = 10 << 20 // 10 MiB
	thumbnailWidth = 320
)

type Service interface {
	Upload(ctx context.Context, venueID string, header *multipart.FileHeader) (*Photo, error)
	ListByVenue(ctx context.Context, venueID string) ([]*Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	venueService venue.Service
	storage      storage.Storage
	imgProc      *storage.ImageProcessor
}

func NewService(repo Repository, venueService venue.Service, store storage.Storage) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
		storage:      store,
		imgProc:      storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, venueID string, header *multipart.FileHeader) (*Photo, error) {
	if header.Size > maxPhotoBytes {
		return nil, ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	// The venue must exist before a photo can hang off it.
	if _, err := s.venueService.GetByID(ctx, venueID); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffered so the content can be read twice: once for the original,
	// once for the thumbnail. Photos are bounded by maxPhotoBytes.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	shard := photoID[:2]
	storagePath := fmt.Sprintf("venues/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	// Thumbnail generation is best effort; a photo without a thumbnail is
	// still useful.
	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), thumbnailWidth, thumbnailWidth)
	if err != nil {
		log.Printf("failed to generate thumbnail for photo %s: %v", photoID, err)
	} else {
		tPath := fmt.Sprintf("venues/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err != nil {
			log.Printf("failed to save thumbnail for photo %s: %v", photoID, err)
		} else {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		VenueID:       venueID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Clean up storage when the record cannot be written.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByVenue(ctx context.Context, venueID string) ([]*Photo, error) {
	if _, err := s.venueService.GetByID(ctx, venueID); err != nil {
		return nil, err
	}
	return s.repo.ListByVenue(ctx, venueID)
}

func (s *service) Get(ctx context.Context, id string) (*Photo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}
	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the record is removed regardless.
	if err := s.storage.Delete(ctx, p.StoragePath); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("failed to delete photo file %s: %v", p.StoragePath, err)
	}
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
