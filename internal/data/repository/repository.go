package repository

import (
	"errors"

	"tour-booking/pkg/storage"

	"go.uber.org/zap"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type Repository struct {
	User    UserRepository
	Tour    TourRepository
	Booking BookingRepository
}

func NewRepository(backend storage.Backend, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(backend, log),
		Tour:    NewTourRepository(backend, log),
		Booking: NewBookingRepository(backend, log),
	}
}
