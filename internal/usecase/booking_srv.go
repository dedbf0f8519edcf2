package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	List(ctx context.Context, actor Actor) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string, actor Actor) (*entity.Booking, error)
	Delete(ctx context.Context, bookingID string, actor Actor) (*entity.Booking, error)

	// Admin endpoints
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.AdminBookingListResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	status := entity.BookingStatusPending
	if req.Status != "" {
		status = entity.BookingStatus(req.Status)
	}

	guideName := req.GuideName
	if guideName == "" {
		guideName = "Guide"
	}
	travelerName := req.TravelerName
	if travelerName == "" {
		travelerName = "Traveler"
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:           utils.GenerateBookingID(),
		TourID:       req.TourID.String(),
		TourTitle:    req.TourTitle,
		GuideID:      req.GuideID.String(),
		GuideName:    guideName,
		TravelerID:   req.TravelerID.String(),
		TravelerName: travelerName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: req.Participants,
		TotalPrice:   req.TotalPrice,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a booking for this tour and time slot already exists", ErrConflict)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("traveler_id", booking.TravelerID),
			zap.String("tour_id", booking.TourID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("tour_id", booking.TourID),
		zap.String("traveler_id", booking.TravelerID),
		zap.String("date", booking.Date),
		zap.String("start_time", booking.StartTime),
		zap.Int("participants", booking.Participants),
		zap.Int("total_price", booking.TotalPrice),
	)

	return booking, nil
}

func (s *bookingService) List(ctx context.Context, actor Actor) ([]entity.Booking, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if actor.IsAdmin() {
		return bookings, nil
	}

	var visible []entity.Booking
	for _, b := range bookings {
		if CanViewBooking(&b, actor) {
			visible = append(visible, b)
		}
	}

	return visible, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID, status string, actor Actor) (*entity.Booking, error) {
	newStatus := entity.BookingStatus(status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if !CanMutateBooking(booking, actor) {
		s.log.Warn("Status change denied",
			zap.String("booking_id", bookingID),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", string(actor.Role)),
		)
		return nil, fmt.Errorf("%w: not allowed to modify this booking", ErrForbidden)
	}

	// Non-admins may only move a booking out of pending; confirmed,
	// cancelled and completed are terminal for them.
	if !actor.IsAdmin() && booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s, only pending bookings can change status",
			ErrInvalidState, booking.Status)
	}

	updated, err := s.repo.Booking.UpdateStatus(ctx, bookingID, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", status),
		zap.String("actor_id", actor.ID),
	)

	return updated, nil
}

func (s *bookingService) Delete(ctx context.Context, bookingID string, actor Actor) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if !CanDeleteBooking(booking, actor) {
		s.log.Warn("Booking delete denied",
			zap.String("booking_id", bookingID),
			zap.String("actor_id", actor.ID),
		)
		return nil, fmt.Errorf("%w: not allowed to delete this booking", ErrForbidden)
	}

	if !actor.IsAdmin() && booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s, only pending bookings can be cancelled",
			ErrInvalidState, booking.Status)
	}

	removed, err := s.repo.Booking.Delete(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking removed",
		zap.String("booking_id", bookingID),
		zap.String("actor_id", actor.ID),
		zap.String("status", string(removed.Status)),
	)

	return removed, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.AdminBookingListResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}

	total := int64(len(bookings))
	page := paginate(len(bookings), req)
	paged := bookings[page.start:page.end]
	if paged == nil {
		paged = []entity.Booking{}
	}

	return &response.AdminBookingListResponse{
		Bookings:   paged,
		Pagination: response.NewPaginationMeta(req.Page, req.Limit(), total),
	}, nil
}

type pageBounds struct {
	start, end int
}

func paginate(length int, req *request.PaginatedRequest) pageBounds {
	start := req.Offset()
	if start > length {
		start = length
	}
	end := start + req.Limit()
	if end > length {
		end = length
	}
	return pageBounds{start: start, end: end}
}
