package repository

import (
	"context"
	"fmt"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/storage"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
}

type userRepository struct {
	users *storage.Collection[entity.User]
	log   *zap.Logger
}

func NewUserRepository(backend storage.Backend, log *zap.Logger) UserRepository {
	return &userRepository{
		users: storage.NewCollection[entity.User](backend, "users"),
		log:   log.With(zap.String("repository", "user")),
	}
}

// Create assigns the next id and appends the user. The unique-email check
// runs inside the collection lock so concurrent signups cannot both claim
// the same address.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.users.Update(func(users []entity.User) ([]entity.User, error) {
		for _, u := range users {
			if strings.EqualFold(u.Email, user.Email) {
				return nil, fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
			}
		}

		maxID := 0
		for _, u := range users {
			if u.ID > maxID {
				maxID = u.ID
			}
		}
		user.ID = maxID + 1

		return append(users, *user), nil
	})

	if err != nil {
		return err
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	users, err := r.users.Load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.users.Load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}

	return nil, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	users, err := r.users.Load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}

	return users, nil
}
