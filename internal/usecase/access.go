package usecase

import "tour-booking/internal/data/entity"

// Actor is the identity a request acts under.
type Actor struct {
	ID   string
	Role entity.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanMutateBooking gates status changes. Admins may touch anything. While
// a booking is live only its traveler or the tour's guide may act on it;
// once terminal the ownership guard no longer applies (state rules still do).
func CanMutateBooking(b *entity.Booking, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	if !b.Status.Live() {
		return true
	}
	return b.TravelerID == actor.ID || b.GuideID == actor.ID
}

// CanDeleteBooking gates removal: only the owning traveler or an admin,
// regardless of status.
func CanDeleteBooking(b *entity.Booking, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return b.TravelerID == actor.ID
}

// CanViewBooking gates listings: admins see everything, travelers see
// their own non-cancelled bookings.
func CanViewBooking(b *entity.Booking, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return b.TravelerID == actor.ID && b.Status != entity.BookingStatusCancelled
}
