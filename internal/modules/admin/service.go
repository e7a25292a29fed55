package admin

import (
	"context"
	"time"

	"malaeb/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
}

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*UserListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	rows := make([]UserRow, len(users))
	for i, u := range users {
		rows[i] = UserRow{
			ID:              u.ID,
			Email:           u.Email,
			Name:            u.Name,
			Role:            string(u.Role),
			PreferredLocale: string(u.PreferredLocale),
			EmailVerified:   u.EmailVerified,
			IsActive:        u.IsActive,
			CreatedAt:       u.CreatedAt.Format(time.RFC3339),
		}
	}
	return &UserListResponse{Users: rows, Total: total}, nil
}

func (s *Service) UpdateRole(ctx context.Context, userID int64, role domain.UserRole) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Role = role
	return s.users.Update(ctx, user)
}

func (s *Service) SetActive(ctx context.Context, userID int64, active bool) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	return s.users.Update(ctx, user)
}
