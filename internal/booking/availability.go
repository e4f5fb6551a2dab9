package booking

import "time"

// nearbyBufferMinutes is the advisory margin around a requested window.
// Bookings inside it are surfaced so schedulers can account for setup and
// turnover time between events; they never block a request.
const nearbyBufferMinutes = 60

// ReasonBlockedByAccepted is the only reason an availability check reports
// a window as unavailable: a confirmed booking is an absolute hold.
const ReasonBlockedByAccepted = "blocked-by-accepted-booking"

// AvailabilityQuery asks whether a venue is free for a window on a date.
type AvailabilityQuery struct {
	VenueID string
	Date    time.Time
	Window  TimeWindow
}

// AvailabilityResult classifies the requested window against the venue's
// existing bookings.
//
// Precedence: an accepted overlap makes the window unavailable and nothing
// else is reported. Otherwise pending overlaps are listed as soft conflicts
// (the window stays available; an admin weighs the competing requests).
// Only a window with no overlap at all gets nearby-booking advisories.
type AvailabilityResult struct {
	Available                  bool
	Reason                     string
	ConflictingPendingBookings []*Booking
	NearbyBookings             []*Booking
}

// CheckAvailability classifies the requested window against the supplied
// snapshot of existing bookings. The caller is responsible for supplying
// only bookings for the query's venue and date, and for treating the
// snapshot as immutable for the duration of the call; check-then-book races
// are the storage layer's concern.
//
// The function is pure: it never mutates its inputs and the same inputs
// always produce the same result.
func CheckAvailability(q AvailabilityQuery, existing []*Booking) (*AvailabilityResult, error) {
	if q.Window.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	var accepted, pending []*Booking
	for _, b := range existing {
		switch b.Status {
		case StatusAccepted:
			accepted = append(accepted, b)
		case StatusPending:
			pending = append(pending, b)
		case StatusRejected:
			// Terminal and inert: rejected bookings never affect scheduling.
		default:
			return nil, ErrInconsistentBookingSet
		}
	}

	// A confirmed booking always wins, regardless of any pending requests.
	for _, b := range accepted {
		if q.Window.Overlaps(b.Window) {
			return &AvailabilityResult{
				Available: false,
				Reason:    ReasonBlockedByAccepted,
			}, nil
		}
	}

	// Pending bookings never block; they are surfaced so the admin can see
	// the contention.
	var conflicts []*Booking
	for _, b := range pending {
		if q.Window.Overlaps(b.Window) {
			conflicts = append(conflicts, b)
		}
	}
	if len(conflicts) > 0 {
		return &AvailabilityResult{
			Available:                  true,
			ConflictingPendingBookings: conflicts,
		}, nil
	}

	// No overlap at all: flag bookings within the one-hour buffer. The
	// buffer interval is inclusive on both ends, and so is the containment
	// test against existing windows.
	bufferStart := q.Window.StartMinutes - nearbyBufferMinutes
	bufferEnd := q.Window.End() + nearbyBufferMinutes

	var nearby []*Booking
	for _, b := range existing {
		if b.Status == StatusRejected {
			continue
		}
		start, end := b.Window.StartMinutes, b.Window.End()
		switch {
		case start >= bufferStart && start <= bufferEnd,
			end >= bufferStart && end <= bufferEnd,
			b.Window.Covers(q.Window.StartMinutes),
			b.Window.Covers(q.Window.End()):
			nearby = append(nearby, b)
		}
	}

	return &AvailabilityResult{
		Available:      true,
		NearbyBookings: nearby,
	}, nil
}
