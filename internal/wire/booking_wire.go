package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - reserve a slot
	r.Post("/api/bookings", bookingHandler.Create)

	// GET /api/bookings - list bookings for a user (admin sees all)
	r.Get("/api/bookings", bookingHandler.List)

	// PATCH /api/bookings/{id} - change booking status
	r.Patch("/api/bookings/{id}", bookingHandler.UpdateStatus)

	// DELETE /api/bookings/{id} - remove a booking
	r.Delete("/api/bookings/{id}", bookingHandler.Delete)
}
