package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvenue/venue-booking-backend/internal/booking"
)

func sampleBooking(t *testing.T) *booking.Booking {
	t.Helper()
	window, err := booking.NewTimeWindow("14:00", 90)
	require.NoError(t, err)

	return &booking.Booking{
		ID:           "3f2c9a1e-0000-0000-0000-000000000001",
		VenueID:      "venue-1",
		VenueName:    "Main Auditorium",
		Date:         time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Window:       window,
		Reason:       "Annual tech symposium",
		Organisation: "Robotics Club",
		Contact: booking.Contact{
			Name:  "Asha Rao",
			Phone: "9876543210",
			Email: "asha.rao@itbhu.ac.in",
		},
		Status: booking.StatusPending,
	}
}

func TestRenderRequestEmail(t *testing.T) {
	b := sampleBooking(t)

	subject, plain, html, err := renderRequestEmail("https://booking.example.org", b)
	require.NoError(t, err)

	assert.Contains(t, subject, "Main Auditorium")

	// The action links must carry the booking id so the admin can decide
	// straight from the email.
	acceptURL := "https://booking.example.org/v1/admin/bookings/accept?booking_id=" + b.ID
	rejectURL := "https://booking.example.org/v1/admin/bookings/reject?booking_id=" + b.ID
	assert.Contains(t, html, acceptURL)
	assert.Contains(t, html, rejectURL)
	assert.Contains(t, plain, acceptURL)
	assert.Contains(t, plain, rejectURL)

	assert.Contains(t, html, "Robotics Club")
	assert.Contains(t, html, "2026-09-12")
	assert.Contains(t, html, "14:00")
	assert.Contains(t, html, "15:30")
	assert.Contains(t, html, "asha.rao@itbhu.ac.in")
}

func TestRenderDecisionEmail(t *testing.T) {
	b := sampleBooking(t)
	b.Status = booking.StatusAccepted

	subject, plain, html, err := renderDecisionEmail(b)
	require.NoError(t, err)

	assert.Contains(t, subject, "accepted")
	assert.Contains(t, html, "Asha Rao")
	assert.Contains(t, html, "Main Auditorium")
	assert.Contains(t, html, "accepted")
	assert.Contains(t, plain, "accepted")
}

func TestRenderRequestEmailEscapesContent(t *testing.T) {
	b := sampleBooking(t)
	b.Reason = `<script>alert("x")</script>`

	_, _, html, err := renderRequestEmail("https://booking.example.org", b)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
