package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	CreateAdmin(ctx context.Context) (*entity.User, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	return s.createUser(ctx, req.Name, req.Email, req.Password, entity.UserRole(req.Role), req.BirthYear, req.Gender)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	token, err := utils.GenerateToken(s.config.JWT, strconv.Itoa(user.ID), user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return &response.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: response.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

// CreateAdmin creates the bootstrap admin account from config. Calling it
// again once the account exists is a conflict.
func (s *authService) CreateAdmin(ctx context.Context) (*entity.User, error) {
	existing, err := s.repo.User.FindByEmail(ctx, s.config.Admin.Email)
	if err != nil {
		return nil, fmt.Errorf("check admin email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: admin account already exists", ErrConflict)
	}

	return s.createUser(ctx, "Administrator", s.config.Admin.Email, s.config.Admin.Password, entity.RoleAdmin, 1990, "male")
}

func (s *authService) createUser(ctx context.Context, name, email, password string, role entity.UserRole, birthYear int, gender string) (*entity.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      role,
		BirthYear: birthYear,
		Gender:    gender,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.Int("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}
