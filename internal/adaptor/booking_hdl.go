package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, response.BookingResponse{
		Success: true,
		Booking: booking,
		Message: "Booking created",
	})
}

// List handles GET /api/bookings?userId=&role=
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")
	role := query.Get("role")
	if userID == "" || role == "" {
		utils.ResponseBadRequest(w, "userId and role are required")
		return
	}

	actor := usecase.Actor{ID: userID, Role: entity.UserRole(role)}
	bookings, err := h.service.List(r.Context(), actor)
	if err != nil {
		respondServiceError(w, h.log, err, "list bookings")
		return
	}
	if bookings == nil {
		bookings = []entity.Booking{}
	}

	utils.ResponseSuccess(w, response.BookingListResponse{Bookings: bookings})
}

// UpdateStatus handles PATCH /api/bookings/{id}
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, req.Status, actor)
	if err != nil {
		respondServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, response.BookingResponse{
		Success: true,
		Booking: booking,
		Message: "Booking updated",
	})
}

// Delete handles DELETE /api/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")

	removed, err := h.service.Delete(r.Context(), bookingID, actor)
	if err != nil {
		respondServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, response.DeletedBookingResponse{
		Success:        true,
		DeletedBooking: removed,
		Message:        "Booking deleted",
	})
}
