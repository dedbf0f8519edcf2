package usecase

import (
	"testing"

	"tour-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityTour() entity.Tour {
	return entity.Tour{
		ID: 1,
		AvailableDates: []entity.AvailableDate{
			{
				Date: "2025-01-15",
				TimeSlots: []entity.TimeSlot{
					{StartTime: "09:00", EndTime: "12:00", MaxParticipants: 5},
					{StartTime: "14:00", EndTime: "17:00", MaxParticipants: 5},
				},
			},
			{
				Date: "2025-01-20",
				TimeSlots: []entity.TimeSlot{
					{StartTime: "09:00", EndTime: "12:00", MaxParticipants: 5},
				},
			},
		},
	}
}

func TestAvailableSlotsHidesSlotsHeldByOthers(t *testing.T) {
	bookings := []entity.Booking{
		{TourID: "1", Date: "2025-01-15", StartTime: "09:00", TravelerID: "20", Status: entity.BookingStatusConfirmed},
	}

	got := AvailableSlots(availabilityTour(), bookings, "10")

	require.Len(t, got.AvailableDates, 2)
	require.Len(t, got.AvailableDates[0].TimeSlots, 1)
	assert.Equal(t, "14:00", got.AvailableDates[0].TimeSlots[0].StartTime)
	assert.Len(t, got.AvailableDates[1].TimeSlots, 1)
}

func TestAvailableSlotsKeepsOwnBookings(t *testing.T) {
	bookings := []entity.Booking{
		{TourID: "1", Date: "2025-01-15", StartTime: "09:00", TravelerID: "10", Status: entity.BookingStatusPending},
	}

	got := AvailableSlots(availabilityTour(), bookings, "10")

	// The requesting traveler still sees the slot their own booking holds.
	require.Len(t, got.AvailableDates, 2)
	assert.Len(t, got.AvailableDates[0].TimeSlots, 2)
}

func TestAvailableSlotsCancelledBookingFreesSlot(t *testing.T) {
	bookings := []entity.Booking{
		{TourID: "1", Date: "2025-01-15", StartTime: "09:00", TravelerID: "20", Status: entity.BookingStatusCancelled},
		{TourID: "1", Date: "2025-01-15", StartTime: "14:00", TravelerID: "20", Status: entity.BookingStatusCompleted},
	}

	got := AvailableSlots(availabilityTour(), bookings, "10")

	assert.Len(t, got.AvailableDates[0].TimeSlots, 2)
}

func TestAvailableSlotsDropsEmptiedDates(t *testing.T) {
	bookings := []entity.Booking{
		{TourID: "1", Date: "2025-01-20", StartTime: "09:00", TravelerID: "20", Status: entity.BookingStatusPending},
	}

	got := AvailableSlots(availabilityTour(), bookings, "10")

	require.Len(t, got.AvailableDates, 1)
	assert.Equal(t, "2025-01-15", got.AvailableDates[0].Date)
}

func TestAvailableSlotsAnonymousSeesAllHeldAsTaken(t *testing.T) {
	bookings := []entity.Booking{
		{TourID: "1", Date: "2025-01-15", StartTime: "09:00", TravelerID: "10", Status: entity.BookingStatusPending},
	}

	got := AvailableSlots(availabilityTour(), bookings, "")

	require.Len(t, got.AvailableDates, 2)
	assert.Len(t, got.AvailableDates[0].TimeSlots, 1)
}

func TestAvailableSlotsIgnoresOtherTours(t *testing.T) {
	bookings := []entity.Booking{
		{TourID: "2", Date: "2025-01-15", StartTime: "09:00", TravelerID: "20", Status: entity.BookingStatusPending},
	}

	got := AvailableSlots(availabilityTour(), bookings, "10")

	assert.Len(t, got.AvailableDates[0].TimeSlots, 2)
}
