package venue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	venues map[string]*Venue
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{venues: make(map[string]*Venue)}
}

func (r *fakeRepo) Create(_ context.Context, v *Venue) error {
	for _, existing := range r.venues {
		if existing.Name == v.Name {
			return ErrAlreadyExists
		}
	}
	r.nextID++
	v.ID = fmt.Sprintf("venue-%d", r.nextID)
	stored := *v
	r.venues[v.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Venue, int, error) {
	var out []*Venue
	for _, v := range r.venues {
		copied := *v
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, v *Venue) error {
	if _, ok := r.venues[v.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range r.venues {
		if id != v.ID && existing.Name == v.Name {
			return ErrAlreadyExists
		}
	}
	stored := *v
	r.venues[v.ID] = &stored
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.venues[id]; !ok {
		return ErrNotFound
	}
	delete(r.venues, id)
	return nil
}

func TestVenueCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	t.Run("creates a venue with trimmed fields", func(t *testing.T) {
		v, err := svc.Create(ctx, CreateRequest{
			Name:            "  Main Auditorium  ",
			Location:        " Academic Block A ",
			SeatingCapacity: 400,
			ACAvailable:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Main Auditorium", v.Name)
		assert.Equal(t, "Academic Block A", v.Location)
		assert.NotEmpty(t, v.ID)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "   ", SeatingCapacity: 10})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Seminar Hall", SeatingCapacity: 0})
		assert.ErrorIs(t, err, ErrBadCapacity)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Main Auditorium", SeatingCapacity: 100})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestVenueUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	v, err := svc.Create(ctx, CreateRequest{Name: "Seminar Hall", SeatingCapacity: 80})
	require.NoError(t, err)

	t.Run("updates only the provided fields", func(t *testing.T) {
		capacity := 120
		updated, err := svc.Update(ctx, v.ID, UpdateRequest{SeatingCapacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, "Seminar Hall", updated.Name)
		assert.Equal(t, 120, updated.SeatingCapacity)
	})

	t.Run("rejects clearing the name", func(t *testing.T) {
		empty := " "
		_, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &empty})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("unknown venue", func(t *testing.T) {
		name := "Anything"
		_, err := svc.Update(ctx, "missing", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVenueDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	v, err := svc.Create(ctx, CreateRequest{Name: "Open Air Theatre", SeatingCapacity: 600})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, v.ID))
	_, err = svc.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
