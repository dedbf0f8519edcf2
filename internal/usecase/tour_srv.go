package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type TourService interface {
	// List returns all tours with availability filtered for the
	// requesting user (empty userID for an anonymous view).
	List(ctx context.Context, userID string) ([]entity.Tour, error)
	Create(ctx context.Context, req *request.CreateTourRequest) (*entity.Tour, error)
	Replace(ctx context.Context, id int, tour *entity.Tour) (*entity.Tour, error)
	Delete(ctx context.Context, id int) error
	Seed(ctx context.Context) error
}

type tourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) List(ctx context.Context, userID string) ([]entity.Tour, error) {
	if err := s.repo.Tour.EnsureSeed(ctx); err != nil {
		s.log.Error("Failed to seed tours", zap.Error(err))
		return nil, fmt.Errorf("seed tours: %w", err)
	}

	tours, err := s.repo.Tour.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings for availability: %w", err)
	}

	filtered := make([]entity.Tour, len(tours))
	for i, tour := range tours {
		filtered[i] = AvailableSlots(tour, bookings, userID)
	}

	return filtered, nil
}

func (s *tourService) Create(ctx context.Context, req *request.CreateTourRequest) (*entity.Tour, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	details := req.Details
	if len(details) == 0 {
		details = []string{"Tour details to be added"}
	}

	image := "/images/default.jpg"
	if len(req.Images) > 0 {
		image = req.Images[0]
	}

	guideDescription := req.GuideDescription
	if guideDescription == "" {
		guideDescription = fmt.Sprintf("Guided by %s.", req.GuideName)
	}

	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 10
	}

	guideLanguage := req.GuideLanguage
	if guideLanguage == "" {
		guideLanguage = "Korean"
	}

	tour := &entity.Tour{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		Duration:         req.Duration,
		Details:          details,
		Image:            image,
		Images:           req.Images,
		GuideName:        req.GuideName,
		GuideDescription: guideDescription,
		GuideImage:       req.GuideImage,
		GuideRating:      4.5,
		GuideSpecialties: []string{"tour", "guide"},
		MaxParticipants:  maxParticipants,
		GuideLanguage:    guideLanguage,
		AvailableDates:   []entity.AvailableDate{},
	}

	if err := s.repo.Tour.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.Int("tour_id", tour.ID),
		zap.String("title", tour.Title),
		zap.Int("price", tour.Price),
	)

	return tour, nil
}

func (s *tourService) Replace(ctx context.Context, id int, tour *entity.Tour) (*entity.Tour, error) {
	if err := s.repo.Tour.Replace(ctx, id, tour); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: tour %d", ErrNotFound, id)
		}
		s.log.Error("Failed to update tour", zap.Error(err), zap.Int("tour_id", id))
		return nil, fmt.Errorf("update tour %d: %w", id, err)
	}

	s.log.Info("Tour updated", zap.Int("tour_id", id))
	return tour, nil
}

func (s *tourService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Tour.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: tour %d", ErrNotFound, id)
		}
		s.log.Error("Failed to delete tour", zap.Error(err), zap.Int("tour_id", id))
		return fmt.Errorf("delete tour %d: %w", id, err)
	}

	s.log.Info("Tour deleted", zap.Int("tour_id", id))
	return nil
}

// Seed initializes the default catalogue; used by the init endpoint.
func (s *tourService) Seed(ctx context.Context) error {
	start := time.Now()
	if err := s.repo.Tour.EnsureSeed(ctx); err != nil {
		return fmt.Errorf("seed tours: %w", err)
	}

	s.log.Info("Initial data ensured", zap.Duration("took", time.Since(start)))
	return nil
}
