package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/storage"

	"go.uber.org/zap"
)

type TourRepository interface {
	FindAll(ctx context.Context) ([]entity.Tour, error)
	FindByID(ctx context.Context, id int) (*entity.Tour, error)
	Create(ctx context.Context, tour *entity.Tour) error
	Replace(ctx context.Context, id int, tour *entity.Tour) error
	Delete(ctx context.Context, id int) error
	EnsureSeed(ctx context.Context) error
}

type tourRepository struct {
	tours *storage.Collection[entity.Tour]
	log   *zap.Logger
}

func NewTourRepository(backend storage.Backend, log *zap.Logger) TourRepository {
	return &tourRepository{
		tours: storage.NewCollection[entity.Tour](backend, "tours"),
		log:   log.With(zap.String("repository", "tour")),
	}
}

func (r *tourRepository) FindAll(ctx context.Context) ([]entity.Tour, error) {
	tours, err := r.tours.Load()
	if err != nil {
		r.log.Error("Failed to load tours", zap.Error(err))
		return nil, fmt.Errorf("find all tours: %w", err)
	}

	return tours, nil
}

func (r *tourRepository) FindByID(ctx context.Context, id int) (*entity.Tour, error) {
	tours, err := r.tours.Load()
	if err != nil {
		r.log.Error("Failed to load tours", zap.Error(err))
		return nil, fmt.Errorf("find tour by ID %d: %w", id, err)
	}

	for i := range tours {
		if tours[i].ID == id {
			return &tours[i], nil
		}
	}

	return nil, nil
}

// Create assigns id = max(existing)+1 and appends the tour.
func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	err := r.tours.Update(func(tours []entity.Tour) ([]entity.Tour, error) {
		maxID := 0
		for _, t := range tours {
			if t.ID > maxID {
				maxID = t.ID
			}
		}
		tour.ID = maxID + 1

		if tour.GuideID == "" {
			tour.GuideID = fmt.Sprintf("guide-%d", tour.ID)
		}

		return append(tours, *tour), nil
	})

	if err != nil {
		r.log.Error("Failed to create tour", zap.Error(err), zap.String("title", tour.Title))
		return err
	}

	return nil
}

func (r *tourRepository) Replace(ctx context.Context, id int, tour *entity.Tour) error {
	err := r.tours.Update(func(tours []entity.Tour) ([]entity.Tour, error) {
		for i := range tours {
			if tours[i].ID == id {
				tour.ID = id
				tours[i] = *tour
				return tours, nil
			}
		}
		return nil, fmt.Errorf("tour %d: %w", id, ErrNotFound)
	})

	return err
}

func (r *tourRepository) Delete(ctx context.Context, id int) error {
	err := r.tours.Update(func(tours []entity.Tour) ([]entity.Tour, error) {
		for i := range tours {
			if tours[i].ID == id {
				return append(tours[:i], tours[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("tour %d: %w", id, ErrNotFound)
	})

	return err
}

// EnsureSeed writes the default catalogue when the collection is empty.
func (r *tourRepository) EnsureSeed(ctx context.Context) error {
	err := r.tours.Update(func(tours []entity.Tour) ([]entity.Tour, error) {
		if len(tours) > 0 {
			return tours, nil
		}

		r.log.Info("Seeding default tour catalogue", zap.Int("count", len(defaultTours)))
		return defaultTours, nil
	})

	return err
}

var defaultSlots = []entity.TimeSlot{
	{StartTime: "09:00", EndTime: "12:00", MaxParticipants: 5},
	{StartTime: "14:00", EndTime: "17:00", MaxParticipants: 5},
}

var defaultTours = []entity.Tour{
	{
		ID:          1,
		Title:       "Han River Picnic Tour",
		Description: "A picnic along the Han River with a local guide, against the city's most scenic backdrop.",
		Price:       30000,
		Duration:    "3 hours",
		Details: []string{
			"Picnic setup at Han River Park",
			"Stories about the river's history and culture",
			"Best photo spots along the way",
			"Light refreshments included",
		},
		Image:            "/images/hangang.jpg",
		GuideID:          "guide-1",
		GuideName:        "Kim Hangang",
		GuideDescription: "Han River specialist introducing the river's beauty and history.",
		GuideRating:      4.8,
		GuideSpecialties: []string{"Han River", "nature", "photography"},
		MaxParticipants:  10,
		GuideLanguage:    "Korean",
		AvailableDates: []entity.AvailableDate{
			{Date: "2025-01-15", TimeSlots: defaultSlots},
			{Date: "2025-01-20", TimeSlots: defaultSlots},
			{Date: "2025-01-25", TimeSlots: defaultSlots},
		},
	},
	{
		ID:          2,
		Title:       "Baseball Stadium Outing",
		Description: "Experience Korean baseball culture at the ballpark with a local guide.",
		Price:       30000,
		Duration:    "4 hours",
		Details: []string{
			"Ballpark visit and game atmosphere",
			"Cheering culture up close",
			"Try out fan gear and chants",
			"Light refreshments included",
		},
		Image:            "/images/baseball.jpg",
		GuideID:          "guide-2",
		GuideName:        "Park Yagu",
		GuideDescription: "Baseball culture specialist for an authentic game-day experience.",
		GuideRating:      4.9,
		GuideSpecialties: []string{"baseball", "sports", "culture"},
		MaxParticipants:  10,
		GuideLanguage:    "Korean",
		AvailableDates: []entity.AvailableDate{
			{Date: "2025-01-18", TimeSlots: defaultSlots},
			{Date: "2025-01-22", TimeSlots: defaultSlots},
		},
	},
	{
		ID:          3,
		Title:       "Ikseon-dong Food Tour",
		Description: "Hunt down the hidden restaurants of Ikseon-dong with a local who knows them all.",
		Price:       30000,
		Duration:    "3 hours",
		Details: []string{
			"Walk through the traditional market",
			"Visits to hidden local restaurants",
			"Traditional Korean dishes to taste",
			"Stories behind the neighborhood",
		},
		Image:            "/images/ikseon.jpg",
		GuideID:          "guide-3",
		GuideName:        "Lee Ikseon",
		GuideDescription: "Ikseon-dong food specialist uncovering the area's hidden gems.",
		GuideRating:      4.7,
		GuideSpecialties: []string{"food", "markets", "Korean cuisine"},
		MaxParticipants:  10,
		GuideLanguage:    "Korean",
		AvailableDates: []entity.AvailableDate{
			{Date: "2025-01-16", TimeSlots: defaultSlots},
			{Date: "2025-01-21", TimeSlots: defaultSlots},
		},
	},
}
