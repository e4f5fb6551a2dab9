package booking

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/campusvenue/venue-booking-backend/internal/venue"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

type CreateRequest struct {
	VenueID         string
	Date            time.Time
	StartTime       string
	DurationMinutes int
	Reason          string
	Organisation    string
	Contact         Contact
}

type UpdateRequest struct {
	Date            *time.Time
	StartTime       *string
	DurationMinutes *int
	Reason          *string
	Organisation    *string
	Contact         *Contact
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error

	// ListPending returns the admin review queue, oldest first.
	ListPending(ctx context.Context) ([]*Booking, error)

	// Decide transitions a pending booking to accepted or rejected. The
	// transition happens exactly once; deciding a decided booking fails
	// with ErrAlreadyDecided.
	Decide(ctx context.Context, id string, accept bool) (*Booking, error)

	// Status returns the lifecycle status of a booking.
	Status(ctx context.Context, id string) (Status, error)

	// SubmitFeedback attaches post-event feedback to a booking. It is a
	// non-scheduling field and may be set at any point in the lifecycle.
	SubmitFeedback(ctx context.Context, id, feedback string) error

	// CheckVenueAvailability classifies the requested window against the
	// venue's bookings for the date.
	CheckVenueAvailability(ctx context.Context, venueID string, date time.Time, startTime string, durationMinutes int) (*AvailabilityResult, error)
}

type service struct {
	repo         Repository
	venueService venue.Service
	notifier     Notifier

	// contactEmailDomain restricts the point-of-contact email; empty
	// disables the restriction.
	contactEmailDomain string
}

func NewService(repo Repository, venueService venue.Service, notifier Notifier, contactEmailDomain string) Service {
	return &service{
		repo:               repo,
		venueService:       venueService,
		notifier:           notifier,
		contactEmailDomain: strings.ToLower(contactEmailDomain),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if err := s.validateContact(req.Contact); err != nil {
		return nil, err
	}

	date := truncateToDate(req.Date)
	if date.Before(today()) {
		return nil, ErrDateInPast
	}

	window, err := NewTimeWindow(req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	v, err := s.venueService.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	if err := s.ensureBookable(ctx, v.ID, date, window, ""); err != nil {
		return nil, err
	}

	b := &Booking{
		VenueID:      v.ID,
		VenueName:    v.Name,
		Date:         date,
		Window:       window,
		Reason:       strings.TrimSpace(req.Reason),
		Organisation: strings.TrimSpace(req.Organisation),
		Contact:      req.Contact,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Notification failure must not fail the booking; the request is
	// already stored and visible in the pending queue.
	if err := s.notifier.BookingRequested(ctx, b); err != nil {
		log.Printf("failed to notify admin about booking %s: %v", b.ID, err)
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status != StatusPending {
		return nil, ErrNotEditable
	}

	if req.Contact != nil {
		if err := s.validateContact(*req.Contact); err != nil {
			return nil, err
		}
		b.Contact = *req.Contact
	}
	if req.Reason != nil {
		b.Reason = strings.TrimSpace(*req.Reason)
	}
	if req.Organisation != nil {
		b.Organisation = strings.TrimSpace(*req.Organisation)
	}

	newDate := b.Date
	newWindow := b.Window
	scheduleChanged := false

	if req.Date != nil {
		newDate = truncateToDate(*req.Date)
		scheduleChanged = true
	}
	if req.StartTime != nil || req.DurationMinutes != nil {
		startTime := b.Window.StartClock()
		if req.StartTime != nil {
			startTime = *req.StartTime
		}
		duration := b.Window.DurationMinutes
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}
		newWindow, err = NewTimeWindow(startTime, duration)
		if err != nil {
			return nil, err
		}
		scheduleChanged = true
	}

	if scheduleChanged {
		if newDate.Before(today()) {
			return nil, ErrDateInPast
		}
		if err := s.ensureBookable(ctx, b.VenueID, newDate, newWindow, b.ID); err != nil {
			return nil, err
		}
		b.Date = newDate
		b.Window = newWindow
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListPending(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListPending(ctx)
}

func (s *service) Decide(ctx context.Context, id string, accept bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrAlreadyDecided
	}

	status := StatusRejected
	if accept {
		status = StatusAccepted
	}

	// The repository guards the transition with status = 'pending', so two
	// concurrent decisions cannot both win.
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAlreadyDecided
	}
	b.Status = status

	if err := s.notifier.BookingDecided(ctx, b); err != nil {
		log.Printf("failed to notify requester about booking %s: %v", b.ID, err)
	}

	return b, nil
}

func (s *service) Status(ctx context.Context, id string) (Status, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return b.Status, nil
}

func (s *service) SubmitFeedback(ctx context.Context, id, feedback string) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return ErrEmptyFeedback
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	b.Feedback = feedback
	return s.repo.Update(ctx, b)
}

func (s *service) CheckVenueAvailability(ctx context.Context, venueID string, date time.Time, startTime string, durationMinutes int) (*AvailabilityResult, error) {
	window, err := NewTimeWindow(startTime, durationMinutes)
	if err != nil {
		return nil, err
	}

	if _, err := s.venueService.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	existing, err := s.repo.ListForVenueDate(ctx, venueID, truncateToDate(date))
	if err != nil {
		return nil, err
	}

	return CheckAvailability(AvailabilityQuery{
		VenueID: venueID,
		Date:    truncateToDate(date),
		Window:  window,
	}, existing)
}

// ensureBookable fails with ErrTimeConflict when the window overlaps an
// accepted booking for the venue and date. Pending overlaps do not block.
func (s *service) ensureBookable(ctx context.Context, venueID string, date time.Time, window TimeWindow, excludeID string) error {
	existing, err := s.repo.ListForVenueDate(ctx, venueID, date)
	if err != nil {
		return err
	}

	if excludeID != "" {
		filtered := existing[:0:0]
		for _, b := range existing {
			if b.ID != excludeID {
				filtered = append(filtered, b)
			}
		}
		existing = filtered
	}

	result, err := CheckAvailability(AvailabilityQuery{
		VenueID: venueID,
		Date:    date,
		Window:  window,
	}, existing)
	if err != nil {
		return err
	}
	if !result.Available {
		return ErrTimeConflict
	}
	return nil
}

func (s *service) validateContact(c Contact) error {
	if s.contactEmailDomain != "" && !strings.HasSuffix(strings.ToLower(c.Email), s.contactEmailDomain) {
		return ErrInvalidContactEmail
	}
	if !phoneRe.MatchString(c.Phone) {
		return ErrInvalidContactPhone
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return truncateToDate(time.Now())
}
