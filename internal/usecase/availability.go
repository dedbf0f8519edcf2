package usecase

import (
	"strconv"

	"tour-booking/internal/data/entity"
)

// AvailableSlots returns a copy of tour with the dates and time slots held
// by another traveler removed. A slot is held while any booking referencing
// it is pending or confirmed. The requesting traveler keeps seeing slots
// held by their own bookings; pass an empty userID for an anonymous view.
// Dates whose slot list empties out are dropped entirely.
func AvailableSlots(tour entity.Tour, bookings []entity.Booking, userID string) entity.Tour {
	tourID := strconv.Itoa(tour.ID)

	var dates []entity.AvailableDate
	for _, d := range tour.AvailableDates {
		var slots []entity.TimeSlot
		for _, slot := range d.TimeSlots {
			if !slotHeldByOther(bookings, tourID, d.Date, slot.StartTime, userID) {
				slots = append(slots, slot)
			}
		}

		if len(slots) > 0 {
			dates = append(dates, entity.AvailableDate{Date: d.Date, TimeSlots: slots})
		}
	}

	tour.AvailableDates = dates
	return tour
}

func slotHeldByOther(bookings []entity.Booking, tourID, date, startTime, userID string) bool {
	for _, b := range bookings {
		if b.TourID == tourID &&
			b.Date == date &&
			b.StartTime == startTime &&
			b.Status.Live() &&
			(userID == "" || b.TravelerID != userID) {
			return true
		}
	}
	return false
}
