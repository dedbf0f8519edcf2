package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, authHandler *adaptor.AuthHandler, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		// POST /api/admin/create-admin - bootstrap the admin account.
		// Outside the admin gate so a fresh install can create the first
		// admin; repeat calls are rejected as a conflict.
		r.Post("/create-admin", authHandler.CreateAdmin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			// GET /api/admin/users - paginated user directory
			r.Get("/users", adminHandler.ListUsers)

			// GET /api/admin/bookings - paginated view over every booking
			r.Get("/bookings", adminHandler.ListBookings)

			// PATCH /api/admin/bookings/{id} - force a status change
			r.Patch("/bookings/{id}", adminHandler.UpdateBookingStatus)
		})
	})
}
