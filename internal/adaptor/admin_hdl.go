package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	users    usecase.UserService
	bookings usecase.BookingService
	log      *zap.Logger
}

func NewAdminHandler(users usecase.UserService, bookings usecase.BookingService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		users:    users,
		bookings: bookings,
		log:      log.With(zap.String("handler", "admin")),
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	result, err := h.users.ListAll(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, result)
}

// ListBookings handles GET /api/admin/bookings
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	result, err := h.bookings.ListAll(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, result)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/{id}
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.bookings.UpdateStatus(r.Context(), bookingID, req.Status, actor)
	if err != nil {
		respondServiceError(w, h.log, err, "admin update booking status")
		return
	}

	utils.ResponseSuccess(w, map[string]any{
		"success": true,
		"booking": booking,
	})
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
