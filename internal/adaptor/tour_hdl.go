package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// List handles GET /api/tours?userId=
func (h *TourHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	tours, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list tours")
		return
	}
	if tours == nil {
		tours = []entity.Tour{}
	}

	utils.ResponseSuccess(w, response.TourListResponse{
		Success: true,
		Tours:   tours,
	})
}

// Create handles POST /api/tours (admin only)
func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	tour, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create tour")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.TourResponse{
		Success: true,
		Tour:    tour,
		Message: "Tour created",
	})
}

// Update handles PUT /api/tours/{id} (admin only)
func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tour id")
		return
	}

	var tour entity.Tour
	if err := json.NewDecoder(r.Body).Decode(&tour); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.Replace(r.Context(), id, &tour)
	if err != nil {
		respondServiceError(w, h.log, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, response.TourResponse{
		Success: true,
		Tour:    updated,
		Message: "Tour updated",
	})
}

// Delete handles DELETE /api/tours?id= (admin only)
func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		utils.ResponseBadRequest(w, "id is required")
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tour id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, response.TourDeletedResponse{
		Success: true,
		Message: "Tour deleted",
	})
}

// Init handles POST /api/init, reseeding the tour catalogue.
func (h *TourHandler) Init(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Seed(r.Context()); err != nil {
		respondServiceError(w, h.log, err, "seed tours")
		return
	}

	utils.ResponseSuccess(w, map[string]any{
		"success": true,
		"message": "Data initialized",
	})
}
