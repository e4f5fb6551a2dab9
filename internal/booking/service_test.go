package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvenue/venue-booking-backend/internal/venue"
)

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int

	// forceDecideRace makes UpdateStatus report that another decision won.
	forceDecideRace bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (r *fakeRepo) Create(_ context.Context, b *Booking) error {
	r.nextID++
	b.ID = fmt.Sprintf("bk-%d", r.nextID)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) ListPending(_ context.Context) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.Status == StatusPending {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) (bool, error) {
	if r.forceDecideRace {
		return false, nil
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != StatusPending {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (r *fakeRepo) ListForVenueDate(_ context.Context, venueID string, date time.Time) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.VenueID == venueID && b.Date.Equal(date) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeVenueService struct {
	venues map[string]*venue.Venue
}

func newFakeVenueService(venues ...*venue.Venue) *fakeVenueService {
	m := make(map[string]*venue.Venue)
	for _, v := range venues {
		m[v.ID] = v
	}
	return &fakeVenueService{venues: m}
}

func (s *fakeVenueService) Create(_ context.Context, _ venue.CreateRequest) (*venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeVenueService) GetByID(_ context.Context, id string) (*venue.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, venue.ErrNotFound
	}
	return v, nil
}

func (s *fakeVenueService) List(_ context.Context, _ venue.Filter) ([]*venue.Venue, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *fakeVenueService) Update(_ context.Context, _ string, _ venue.UpdateRequest) (*venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeVenueService) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

type fakeNotifier struct {
	requested []string
	decided   []string
	err       error
}

func (n *fakeNotifier) BookingRequested(_ context.Context, b *Booking) error {
	n.requested = append(n.requested, b.ID)
	return n.err
}

func (n *fakeNotifier) BookingDecided(_ context.Context, b *Booking) error {
	n.decided = append(n.decided, b.ID)
	return n.err
}

const testVenueID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

func newTestService(t *testing.T, domain string) (Service, *fakeRepo, *fakeNotifier) {
	t.Helper()
	repo := newFakeRepo()
	venues := newFakeVenueService(&venue.Venue{ID: testVenueID, Name: "Main Auditorium", SeatingCapacity: 400})
	notifier := &fakeNotifier{}
	return NewService(repo, venues, notifier, domain), repo, notifier
}

func futureDate() time.Time {
	return time.Now().UTC().AddDate(0, 0, 7)
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		VenueID:         testVenueID,
		Date:            futureDate(),
		StartTime:       "14:00",
		DurationMinutes: 60,
		Reason:          "Annual tech symposium",
		Organisation:    "Robotics Club",
		Contact: Contact{
			Name:  "Asha Rao",
			Phone: "9876543210",
			Email: "asha.rao@itbhu.ac.in",
		},
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending booking and notifies the admin", func(t *testing.T) {
		svc, repo, notifier := newTestService(t, "")

		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID)
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, "Main Auditorium", b.VenueName)
		assert.Equal(t, 14*60, b.Window.StartMinutes)
		assert.Len(t, repo.bookings, 1)
		assert.Equal(t, []string{b.ID}, notifier.requested)
	})

	t.Run("notifier failure does not fail the booking", func(t *testing.T) {
		svc, repo, notifier := newTestService(t, "")
		notifier.err = errors.New("sendgrid down")

		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Len(t, repo.bookings, 1)
		assert.Equal(t, StatusPending, b.Status)
	})

	t.Run("rejects a past date", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")

		req := validCreateRequest()
		req.Date = time.Now().UTC().AddDate(0, 0, -1)
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("rejects an invalid phone number", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")

		req := validCreateRequest()
		req.Contact.Phone = "12345"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidContactPhone)
	})

	t.Run("enforces the institute email domain when configured", func(t *testing.T) {
		svc, _, _ := newTestService(t, "@itbhu.ac.in")

		req := validCreateRequest()
		req.Contact.Email = "asha.rao@gmail.com"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidContactEmail)

		req.Contact.Email = "Asha.Rao@ITBHU.AC.IN"
		_, err = svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("rejects an unknown venue", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")

		req := validCreateRequest()
		req.VenueID = "ffffffff-ffff-ffff-ffff-ffffffffffff"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("accepted booking blocks an overlapping request", func(t *testing.T) {
		svc, repo, _ := newTestService(t, "")

		first, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		repo.bookings[first.ID].Status = StatusAccepted

		req := validCreateRequest()
		req.StartTime = "14:30"
		req.DurationMinutes = 30
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("pending overlap does not block a new request", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")

		_, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		req := validCreateRequest()
		req.StartTime = "14:30"
		_, err = svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("rejects an unparseable start time", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")

		req := validCreateRequest()
		req.StartTime = "quarter past two"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}

func TestServiceDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("accepting a pending booking notifies the requester", func(t *testing.T) {
		svc, _, notifier := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		decided, err := svc.Decide(ctx, b.ID, true)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, decided.Status)
		assert.Equal(t, []string{b.ID}, notifier.decided)

		status, err := svc.Status(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, status)
	})

	t.Run("rejecting a pending booking", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		decided, err := svc.Decide(ctx, b.ID, false)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, decided.Status)
	})

	t.Run("a decision happens exactly once", func(t *testing.T) {
		svc, _, notifier := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = svc.Decide(ctx, b.ID, true)
		require.NoError(t, err)

		_, err = svc.Decide(ctx, b.ID, false)
		assert.ErrorIs(t, err, ErrAlreadyDecided)
		assert.Len(t, notifier.decided, 1)

		status, err := svc.Status(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, status)
	})

	t.Run("losing the decision race surfaces as already decided", func(t *testing.T) {
		svc, repo, notifier := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		repo.forceDecideRace = true
		_, err = svc.Decide(ctx, b.ID, true)
		assert.ErrorIs(t, err, ErrAlreadyDecided)
		assert.Empty(t, notifier.decided)
	})

	t.Run("deciding an unknown booking", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		_, err := svc.Decide(ctx, "missing", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("only pending bookings can be edited", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = svc.Decide(ctx, b.ID, true)
		require.NoError(t, err)

		reason := "Updated reason"
		_, err = svc.Update(ctx, b.ID, UpdateRequest{Reason: &reason})
		assert.ErrorIs(t, err, ErrNotEditable)
	})

	t.Run("rescheduling excludes the booking itself from the conflict check", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		// Shift within its own original window; the only overlap is itself.
		start := "14:15"
		updated, err := svc.Update(ctx, b.ID, UpdateRequest{StartTime: &start})
		require.NoError(t, err)
		assert.Equal(t, 14*60+15, updated.Window.StartMinutes)
	})

	t.Run("rescheduling onto an accepted booking fails", func(t *testing.T) {
		svc, repo, _ := newTestService(t, "")

		blocker, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		repo.bookings[blocker.ID].Status = StatusAccepted

		req := validCreateRequest()
		req.StartTime = "09:00"
		b, err := svc.Create(ctx, req)
		require.NoError(t, err)

		start := "14:30"
		_, err = svc.Update(ctx, b.ID, UpdateRequest{StartTime: &start})
		assert.ErrorIs(t, err, ErrTimeConflict)
	})
}

func TestServiceFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches feedback", func(t *testing.T) {
		svc, repo, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		require.NoError(t, svc.SubmitFeedback(ctx, b.ID, "  Great acoustics.  "))
		assert.Equal(t, "Great acoustics.", repo.bookings[b.ID].Feedback)
	})

	t.Run("feedback is allowed after a decision", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		_, err = svc.Decide(ctx, b.ID, true)
		require.NoError(t, err)

		assert.NoError(t, svc.SubmitFeedback(ctx, b.ID, "Event went well."))
	})

	t.Run("empty feedback is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		err = svc.SubmitFeedback(ctx, b.ID, "   ")
		assert.ErrorIs(t, err, ErrEmptyFeedback)
	})
}

func TestServiceCheckVenueAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("reports blocked for an accepted overlap", func(t *testing.T) {
		svc, repo, _ := newTestService(t, "")
		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		repo.bookings[b.ID].Status = StatusAccepted

		got, err := svc.CheckVenueAvailability(ctx, testVenueID, futureDate(), "14:30", 30)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, ReasonBlockedByAccepted, got.Reason)
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		_, err := svc.CheckVenueAvailability(ctx, "ffffffff-ffff-ffff-ffff-ffffffffffff", futureDate(), "14:00", 60)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("invalid duration", func(t *testing.T) {
		svc, _, _ := newTestService(t, "")
		_, err := svc.CheckVenueAvailability(ctx, testVenueID, futureDate(), "14:00", 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}
