package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Payment records money received against a reservation. Rows are append-only;
// refunds are recorded as separate negative-amount rows.
type Payment struct {
	ID            int64         `gorm:"primaryKey;column:id" json:"id"`
	ReservationID int64         `gorm:"column:reservation_id;index" json:"reservation_id"`
	Amount        float64       `gorm:"column:amount" json:"amount"`
	Method        PaymentMethod `gorm:"column:method" json:"method"`
	RecordedBy    int64         `gorm:"column:recorded_by" json:"recorded_by"`
	Reference     string        `gorm:"column:reference" json:"reference,omitempty"`
	CreatedAt     time.Time     `gorm:"column:created_at" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
