package usecase

import (
	"testing"

	"tour-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanMutateBooking(t *testing.T) {
	booking := &entity.Booking{
		TravelerID: "10",
		GuideID:    "guide-1",
		Status:     entity.BookingStatusPending,
	}

	tests := []struct {
		name   string
		status entity.BookingStatus
		actor  Actor
		want   bool
	}{
		{"owning traveler on pending", entity.BookingStatusPending, Actor{ID: "10", Role: entity.RoleTraveler}, true},
		{"other traveler on pending", entity.BookingStatusPending, Actor{ID: "11", Role: entity.RoleTraveler}, false},
		{"tour guide on pending", entity.BookingStatusPending, Actor{ID: "guide-1", Role: entity.RoleGuide}, true},
		{"other guide on confirmed", entity.BookingStatusConfirmed, Actor{ID: "guide-2", Role: entity.RoleGuide}, false},
		{"admin on confirmed", entity.BookingStatusConfirmed, Actor{ID: "1", Role: entity.RoleAdmin}, true},
		{"stranger on cancelled", entity.BookingStatusCancelled, Actor{ID: "99", Role: entity.RoleTraveler}, true},
		{"stranger on completed", entity.BookingStatusCompleted, Actor{ID: "99", Role: entity.RoleTraveler}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := *booking
			b.Status = tt.status
			assert.Equal(t, tt.want, CanMutateBooking(&b, tt.actor))
		})
	}
}

func TestCanDeleteBooking(t *testing.T) {
	booking := &entity.Booking{
		TravelerID: "10",
		GuideID:    "guide-1",
		Status:     entity.BookingStatusConfirmed,
	}

	assert.True(t, CanDeleteBooking(booking, Actor{ID: "10", Role: entity.RoleTraveler}))
	assert.True(t, CanDeleteBooking(booking, Actor{ID: "1", Role: entity.RoleAdmin}))
	assert.False(t, CanDeleteBooking(booking, Actor{ID: "11", Role: entity.RoleTraveler}))
	assert.False(t, CanDeleteBooking(booking, Actor{ID: "guide-1", Role: entity.RoleGuide}))
}

func TestCanViewBooking(t *testing.T) {
	own := &entity.Booking{TravelerID: "10", Status: entity.BookingStatusPending}
	cancelled := &entity.Booking{TravelerID: "10", Status: entity.BookingStatusCancelled}
	other := &entity.Booking{TravelerID: "11", Status: entity.BookingStatusPending}

	traveler := Actor{ID: "10", Role: entity.RoleTraveler}
	admin := Actor{ID: "1", Role: entity.RoleAdmin}

	assert.True(t, CanViewBooking(own, traveler))
	assert.False(t, CanViewBooking(cancelled, traveler))
	assert.False(t, CanViewBooking(other, traveler))

	assert.True(t, CanViewBooking(cancelled, admin))
	assert.True(t, CanViewBooking(other, admin))
}
