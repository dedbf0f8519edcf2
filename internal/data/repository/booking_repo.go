package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/storage"

	"go.uber.org/zap"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	Create(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error)
	Delete(ctx context.Context, id string) (*entity.Booking, error)
}

type bookingRepository struct {
	bookings *storage.Collection[entity.Booking]
	log      *zap.Logger
}

func NewBookingRepository(backend storage.Backend, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		bookings: storage.NewCollection[entity.Booking](backend, "bookings"),
		log:      log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	bookings, err := r.bookings.Load()
	if err != nil {
		r.log.Error("Failed to load bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	bookings, err := r.bookings.Load()
	if err != nil {
		r.log.Error("Failed to load bookings", zap.Error(err))
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}

	return nil, nil
}

// Create appends the booking. The duplicate-slot check runs inside the
// collection lock, so two concurrent requests for the same slot cannot
// both pass it.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	err := r.bookings.Update(func(bookings []entity.Booking) ([]entity.Booking, error) {
		for _, b := range bookings {
			if b.TravelerID == booking.TravelerID &&
				b.TourID == booking.TourID &&
				b.Date == booking.Date &&
				b.StartTime == booking.StartTime &&
				b.Status.Live() {
				return nil, fmt.Errorf("slot %s %s on tour %s: %w",
					booking.Date, booking.StartTime, booking.TourID, ErrDuplicate)
			}
		}

		return append(bookings, *booking), nil
	})

	if err != nil {
		return err
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	var updated entity.Booking

	err := r.bookings.Update(func(bookings []entity.Booking) ([]entity.Booking, error) {
		for i := range bookings {
			if bookings[i].ID == id {
				bookings[i].Status = status
				bookings[i].UpdatedAt = time.Now()
				updated = bookings[i]
				return bookings, nil
			}
		}
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	})

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) (*entity.Booking, error) {
	var removed entity.Booking

	err := r.bookings.Update(func(bookings []entity.Booking) ([]entity.Booking, error) {
		for i := range bookings {
			if bookings[i].ID == id {
				removed = bookings[i]
				return append(bookings[:i], bookings[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	})

	if err != nil {
		return nil, err
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return &removed, nil
}
