package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Reservation books a stadium for a continuous time slot.
type Reservation struct {
	ID            int64             `gorm:"primaryKey;column:id" json:"id"`
	StadiumID     int64             `gorm:"column:stadium_id;index" json:"stadium_id"`
	UserID        int64             `gorm:"column:user_id;index" json:"user_id"`
	StartTime     time.Time         `gorm:"column:start_time" json:"start_time"`
	EndTime       time.Time         `gorm:"column:end_time" json:"end_time"`
	Status        ReservationStatus `gorm:"column:status;default:pending" json:"status"`
	PaymentStatus PaymentStatus     `gorm:"column:payment_status;default:unpaid" json:"payment_status"`
	TotalPrice    float64           `gorm:"column:total_price" json:"total_price"`
	Notes         string            `gorm:"column:notes" json:"notes,omitempty"`
	CancelReason  string            `gorm:"column:cancel_reason" json:"cancel_reason,omitempty"`
	CreatedAt     time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"column:updated_at" json:"-"`
}

func (Reservation) TableName() string { return "reservations" }
