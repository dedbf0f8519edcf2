package adaptor

import (
	"tour-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Tour    *TourHandler
	Booking *BookingHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Tour:    NewTourHandler(service.Tour, log),
		Booking: NewBookingHandler(service.Booking, log),
		Admin:   NewAdminHandler(service.User, service.Booking, log),
	}
}
