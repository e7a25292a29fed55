package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleClub  UserRole = "club"
	RoleAdmin UserRole = "admin"
)

// User represents a platform account. PreferredLocale drives server-side
// localization of every payload sent to this user.
type User struct {
	ID              int64      `gorm:"primaryKey;column:id" json:"id"`
	Email           string     `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash    string     `gorm:"column:password_hash" json:"-"`
	Name            string     `gorm:"column:name" json:"name"`
	Phone           string     `gorm:"column:phone" json:"phone,omitempty"`
	Role            UserRole   `gorm:"column:role;default:user" json:"role"`
	PreferredLocale Locale     `gorm:"column:preferred_locale;default:en" json:"preferred_locale"`
	EmailVerified   bool       `gorm:"column:email_verified;default:false" json:"email_verified"`
	IsActive        bool       `gorm:"column:is_active;default:true" json:"is_active"`
	VerifyTokenHash string     `gorm:"column:verify_token_hash" json:"-"`
	VerifySentAt    *time.Time `gorm:"column:verify_sent_at" json:"-"`
	ResetTokenHash  string     `gorm:"column:reset_token_hash" json:"-"`
	ResetExpiresAt  *time.Time `gorm:"column:reset_expires_at" json:"-"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"-"`
}

func (User) TableName() string { return "users" }
