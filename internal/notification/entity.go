package notification

import (
	"encoding/json"
	"time"
)

// Type categorizes what happened.
type Type string

const (
	TypeUserCreated          Type = "user_created"
	TypeReservationRequested Type = "reservation_requested"
	TypeReservationConfirmed Type = "reservation_confirmed"
	TypeReservationCancelled Type = "reservation_cancelled"
	TypePaymentReceived      Type = "payment_received"
)

// Model names the domain entity a notification points at, for deep-linking.
type Model string

const (
	ModelUser        Model = "user"
	ModelReservation Model = "reservation"
	ModelPayment     Model = "payment"
)

// Notification is a persisted per-user message. Title and message are stored
// in all three platform languages at creation; a client only ever receives the
// pair matching its preferred locale. Everything except IsRead is immutable.
type Notification struct {
	ID          int64           `gorm:"primaryKey;column:id" json:"id"`
	UserID      int64           `gorm:"column:user_id;index:idx_notifications_user_unread" json:"user_id"`
	ActorUserID *int64          `gorm:"column:actor_user_id" json:"actor_user_id,omitempty"`
	Type        Type            `gorm:"column:type" json:"type"`
	Model       Model           `gorm:"column:model" json:"model"`
	ReferenceID int64           `gorm:"column:reference_id" json:"reference_id"`
	TitleEn     string          `gorm:"column:title_en" json:"title_en"`
	TitleFr     string          `gorm:"column:title_fr" json:"title_fr"`
	TitleAr     string          `gorm:"column:title_ar" json:"title_ar"`
	MessageEn   string          `gorm:"column:message_en" json:"message_en"`
	MessageFr   string          `gorm:"column:message_fr" json:"message_fr"`
	MessageAr   string          `gorm:"column:message_ar" json:"message_ar"`
	Link        *string         `gorm:"column:link" json:"link,omitempty"`
	Metadata    json.RawMessage `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	IsRead      bool            `gorm:"column:is_read;index:idx_notifications_user_unread" json:"is_read"`
	CreatedAt   time.Time       `gorm:"column:created_at;index:idx_notifications_user_created" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
