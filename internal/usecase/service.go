package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service groups every business-logic service behind one handle.
type Service struct {
	Auth    AuthService
	Tour    TourService
	Booking BookingService
	User    UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Tour:    NewTourService(repo, log),
		Booking: NewBookingService(repo, log),
		User:    NewUserService(repo, log),
	}
}
