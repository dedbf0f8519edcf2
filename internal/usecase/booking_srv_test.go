package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return repository.NewRepository(storage.NewMemBackend(), zap.NewNop())
}

func seedBooking(t *testing.T, repo *repository.Repository, b entity.Booking) entity.Booking {
	t.Helper()
	if b.Status == "" {
		b.Status = entity.BookingStatusPending
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	require.NoError(t, repo.Booking.Create(context.Background(), &b))
	return b
}

func bookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		TourID:       "1",
		TourTitle:    "Han River Picnic Tour",
		GuideID:      "guide-1",
		TravelerID:   "10",
		Date:         "2025-01-15",
		StartTime:    "09:00",
		EndTime:      "12:00",
		Participants: 2,
		TotalPrice:   60000,
	}
}

func TestBookingCreateDefaults(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	booking, err := svc.Create(context.Background(), bookingRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "Guide", booking.GuideName)
	assert.Equal(t, "Traveler", booking.TravelerName)
	assert.Equal(t, 60000, booking.TotalPrice)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingCreateValidation(t *testing.T) {
	svc := NewBookingService(newTestRepo(t), zap.NewNop())

	req := bookingRequest()
	req.TravelerID = ""
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookingCreateDuplicateConflict(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	seedBooking(t, repo, entity.Booking{
		ID: "booking-1", TourID: "1", TravelerID: "10",
		Date: "2025-01-15", StartTime: "09:00",
		Status: entity.BookingStatusConfirmed,
	})

	_, err := svc.Create(context.Background(), bookingRequest())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBookingCreateAfterCancellation(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	seedBooking(t, repo, entity.Booking{
		ID: "booking-1", TourID: "1", TravelerID: "10",
		Date: "2025-01-15", StartTime: "09:00",
		Status: entity.BookingStatusCancelled,
	})

	booking, err := svc.Create(context.Background(), bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
}

func TestBookingListVisibility(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	seedBooking(t, repo, entity.Booking{ID: "booking-1", TourID: "1", TravelerID: "10", Date: "2025-01-15", StartTime: "09:00"})
	seedBooking(t, repo, entity.Booking{ID: "booking-2", TourID: "1", TravelerID: "10", Date: "2025-01-20", StartTime: "09:00", Status: entity.BookingStatusCancelled})
	seedBooking(t, repo, entity.Booking{ID: "booking-3", TourID: "1", TravelerID: "11", Date: "2025-01-25", StartTime: "09:00"})

	own, err := svc.List(ctx, Actor{ID: "10", Role: entity.RoleTraveler})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "booking-1", own[0].ID)

	all, err := svc.List(ctx, Actor{ID: "1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingUpdateStatus(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()
	owner := Actor{ID: "10", Role: entity.RoleTraveler}

	seedBooking(t, repo, entity.Booking{ID: "booking-1", TourID: "1", TravelerID: "10", GuideID: "guide-1", Date: "2025-01-15", StartTime: "09:00"})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "booking-1", "approved", owner)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "booking-404", "confirmed", owner)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other traveler forbidden", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "booking-1", "confirmed", Actor{ID: "11", Role: entity.RoleTraveler})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("guide may confirm", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, "booking-1", "confirmed", Actor{ID: "guide-1", Role: entity.RoleGuide})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	})

	t.Run("non-admin cannot leave confirmed", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "booking-1", "cancelled", owner)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("admin overrides state rule", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, "booking-1", "completed", Actor{ID: "1", Role: entity.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCompleted, updated.Status)
	})
}

func TestBookingDelete(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	seedBooking(t, repo, entity.Booking{ID: "booking-1", TourID: "1", TravelerID: "10", Date: "2025-01-15", StartTime: "09:00"})
	seedBooking(t, repo, entity.Booking{ID: "booking-2", TourID: "1", TravelerID: "10", Date: "2025-01-20", StartTime: "09:00", Status: entity.BookingStatusConfirmed})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.Delete(ctx, "booking-404", Actor{ID: "10", Role: entity.RoleTraveler})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		_, err := svc.Delete(ctx, "booking-1", Actor{ID: "11", Role: entity.RoleTraveler})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner cannot delete confirmed", func(t *testing.T) {
		_, err := svc.Delete(ctx, "booking-2", Actor{ID: "10", Role: entity.RoleTraveler})
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("owner deletes pending", func(t *testing.T) {
		removed, err := svc.Delete(ctx, "booking-1", Actor{ID: "10", Role: entity.RoleTraveler})
		require.NoError(t, err)
		assert.Equal(t, "booking-1", removed.ID)
	})

	t.Run("admin deletes regardless of status", func(t *testing.T) {
		removed, err := svc.Delete(ctx, "booking-2", Actor{ID: "1", Role: entity.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, removed.Status)
	})
}

func TestBookingListAllPagination(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	dates := []string{"2025-01-15", "2025-01-20", "2025-01-25"}
	for i, d := range dates {
		seedBooking(t, repo, entity.Booking{
			ID: "booking-" + d, TourID: "1", TravelerID: "10",
			Date: d, StartTime: "09:00",
			Participants: i + 1,
		})
	}

	page1, err := svc.ListAll(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page1.Bookings, 2)
	assert.Equal(t, int64(3), page1.Pagination.Total)
	assert.Equal(t, 2, page1.Pagination.TotalPages)

	page2, err := svc.ListAll(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Bookings, 1)

	beyond, err := svc.ListAll(ctx, &request.PaginatedRequest{Page: 5, PerPage: 2})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Bookings)
	assert.Empty(t, beyond.Bookings)
}

// Full reservation cycle: book, confirm, and verify the slot disappears
// for everyone else while the owner keeps seeing their booking.
func TestReservationLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	bookings := NewBookingService(repo, zap.NewNop())
	tours := NewTourService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, tours.Seed(ctx))

	created, err := bookings.Create(ctx, bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, 60000, created.TotalPrice)

	_, err = bookings.UpdateStatus(ctx, created.ID, "confirmed", Actor{ID: "guide-1", Role: entity.RoleGuide})
	require.NoError(t, err)

	// Another traveler no longer sees the 09:00 slot on the booked date.
	othersView, err := tours.List(ctx, "20")
	require.NoError(t, err)
	var booked *entity.Tour
	for i := range othersView {
		if othersView[i].ID == 1 {
			booked = &othersView[i]
		}
	}
	require.NotNil(t, booked)
	for _, d := range booked.AvailableDates {
		if d.Date == "2025-01-15" {
			for _, slot := range d.TimeSlots {
				assert.NotEqual(t, "09:00", slot.StartTime)
			}
		}
	}

	// The booking traveler still sees it.
	ownView, err := tours.List(ctx, "10")
	require.NoError(t, err)
	for _, tour := range ownView {
		if tour.ID != 1 {
			continue
		}
		found := false
		for _, d := range tour.AvailableDates {
			if d.Date != "2025-01-15" {
				continue
			}
			for _, slot := range d.TimeSlots {
				if slot.StartTime == "09:00" {
					found = true
				}
			}
		}
		assert.True(t, found)
	}

	// Rebooking the same slot stays blocked even for the owner.
	_, err = bookings.Create(ctx, bookingRequest())
	assert.ErrorIs(t, err, ErrConflict)
}
