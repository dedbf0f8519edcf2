package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(r chi.Router, tourHandler *adaptor.TourHandler, log *zap.Logger) {
	// GET /api/tours - public catalogue with availability per user
	r.Get("/api/tours", tourHandler.List)

	// Catalogue management requires the admin role.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Admin(log))

		// POST /api/tours - add a tour
		r.Post("/api/tours", tourHandler.Create)

		// PUT /api/tours/{id} - replace a tour
		r.Put("/api/tours/{id}", tourHandler.Update)

		// DELETE /api/tours?id= - remove a tour
		r.Delete("/api/tours", tourHandler.Delete)
	})
}
