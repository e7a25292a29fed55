package reservation

import (
	"context"
	"time"

	"malaeb/internal/domain"
	"malaeb/internal/notification"
)

type ReservationRepositoryInterface interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	HasOverlap(ctx context.Context, stadiumID int64, start, end time.Time) (bool, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type StadiumRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Stadium, error)
}

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error)
	TotalPaid(ctx context.Context, reservationID int64) (float64, error)
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListActiveAdmins(ctx context.Context) ([]domain.User, error)
}

// Notifier is the notification service surface the reservation flow needs.
type Notifier interface {
	Create(ctx context.Context, in notification.CreateInput) (*notification.Notification, error)
}
