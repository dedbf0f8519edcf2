package usecase

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.UserListResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.UserListResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total := int64(len(users))
	page := paginate(len(users), req)

	public := make([]entity.User, 0, page.end-page.start)
	for _, u := range users[page.start:page.end] {
		public = append(public, u.Public())
	}

	return &response.UserListResponse{
		Users:      public,
		Pagination: response.NewPaginationMeta(req.Page, req.Limit(), total),
	}, nil
}
