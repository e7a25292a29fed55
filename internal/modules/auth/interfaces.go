package auth

import (
	"context"

	"malaeb/internal/domain"
	"malaeb/internal/notification"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	ListActiveAdmins(ctx context.Context) ([]domain.User, error)
}

type Mailer interface {
	Send(to, subject, body string) error
}

// Notifier is the notification service surface auth needs.
type Notifier interface {
	Create(ctx context.Context, in notification.CreateInput) (*notification.Notification, error)
}
