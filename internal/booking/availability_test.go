package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start string, duration int) TimeWindow {
	t.Helper()
	w, err := NewTimeWindow(start, duration)
	require.NoError(t, err)
	return w
}

func TestCheckAvailability(t *testing.T) {
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	query := func(t *testing.T, start string, duration int) AvailabilityQuery {
		return AvailabilityQuery{
			VenueID: "venue-1",
			Date:    date,
			Window:  mustWindow(t, start, duration),
		}
	}
	existing := func(t *testing.T, id string, status Status, start string, duration int) *Booking {
		return &Booking{
			ID:      id,
			VenueID: "venue-1",
			Date:    date,
			Window:  mustWindow(t, start, duration),
			Status:  status,
		}
	}

	t.Run("no bookings means fully available", func(t *testing.T) {
		got, err := CheckAvailability(query(t, "14:00", 60), nil)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.Reason)
		assert.Empty(t, got.ConflictingPendingBookings)
		assert.Empty(t, got.NearbyBookings)
	})

	t.Run("accepted overlap blocks", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusAccepted, "14:00", 60),
		}
		got, err := CheckAvailability(query(t, "14:30", 30), bookings)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, ReasonBlockedByAccepted, got.Reason)
		assert.Empty(t, got.ConflictingPendingBookings)
		assert.Empty(t, got.NearbyBookings)
	})

	t.Run("pending overlap is a soft conflict", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusPending, "09:00", 60),
		}
		got, err := CheckAvailability(query(t, "09:30", 45), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		require.Len(t, got.ConflictingPendingBookings, 1)
		assert.Equal(t, "b1", got.ConflictingPendingBookings[0].ID)
		assert.Empty(t, got.NearbyBookings)
	})

	t.Run("accepted overlap wins over pending conflicts", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "pend", StatusPending, "14:00", 60),
			existing(t, "acc", StatusAccepted, "14:30", 60),
		}
		got, err := CheckAvailability(query(t, "14:15", 30), bookings)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, ReasonBlockedByAccepted, got.Reason)
		assert.Empty(t, got.ConflictingPendingBookings)
	})

	t.Run("touching windows do not overlap but are nearby", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusAccepted, "10:00", 60), // ends 11:00
		}
		got, err := CheckAvailability(query(t, "11:00", 60), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.ConflictingPendingBookings)
		require.Len(t, got.NearbyBookings, 1)
		assert.Equal(t, "b1", got.NearbyBookings[0].ID)
	})

	t.Run("booking at the buffer boundary is nearby", func(t *testing.T) {
		// Request 10:00-11:00; buffer reaches back to 09:00 inclusive.
		bookings := []*Booking{
			existing(t, "b1", StatusAccepted, "08:00", 60), // ends exactly 09:00
		}
		got, err := CheckAvailability(query(t, "10:00", 60), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		require.Len(t, got.NearbyBookings, 1)
	})

	t.Run("booking outside the buffer is not nearby", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusAccepted, "07:00", 60), // ends 08:00, buffer starts 09:00
		}
		got, err := CheckAvailability(query(t, "10:00", 60), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.NearbyBookings)
	})

	t.Run("pending near the window is advisory too", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusPending, "11:30", 30),
		}
		got, err := CheckAvailability(query(t, "10:00", 60), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.ConflictingPendingBookings)
		require.Len(t, got.NearbyBookings, 1)
	})

	t.Run("rejected bookings are ignored entirely", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusRejected, "14:00", 60),
			existing(t, "b2", StatusRejected, "15:00", 30),
		}
		got, err := CheckAvailability(query(t, "14:30", 30), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.ConflictingPendingBookings)
		assert.Empty(t, got.NearbyBookings)
	})

	t.Run("multiple pending conflicts keep input order", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "first", StatusPending, "09:00", 120),
			existing(t, "second", StatusPending, "10:00", 60),
		}
		got, err := CheckAvailability(query(t, "09:30", 90), bookings)
		require.NoError(t, err)
		assert.True(t, got.Available)
		require.Len(t, got.ConflictingPendingBookings, 2)
		assert.Equal(t, "first", got.ConflictingPendingBookings[0].ID)
		assert.Equal(t, "second", got.ConflictingPendingBookings[1].ID)
	})

	t.Run("unknown status fails closed", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "ok", StatusAccepted, "09:00", 60),
			existing(t, "bad", Status("cancelled"), "14:00", 60),
		}
		got, err := CheckAvailability(query(t, "10:00", 60), bookings)
		assert.ErrorIs(t, err, ErrInconsistentBookingSet)
		assert.Nil(t, got)
	})

	t.Run("non-positive duration is rejected", func(t *testing.T) {
		q := AvailabilityQuery{VenueID: "venue-1", Date: date}
		got, err := CheckAvailability(q, nil)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Nil(t, got)
	})

	t.Run("repeated calls give identical results and do not mutate input", func(t *testing.T) {
		bookings := []*Booking{
			existing(t, "b1", StatusPending, "09:00", 60),
			existing(t, "b2", StatusAccepted, "12:00", 60),
		}
		q := query(t, "09:30", 30)

		first, err := CheckAvailability(q, bookings)
		require.NoError(t, err)
		second, err := CheckAvailability(q, bookings)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, StatusPending, bookings[0].Status)
		assert.Equal(t, StatusAccepted, bookings[1].Status)
	})
}
