package domain

import "time"

type SurfaceType string

const (
	SurfaceGrass      SurfaceType = "grass"
	SurfaceArtificial SurfaceType = "artificial"
	SurfaceIndoor     SurfaceType = "indoor"
)

// Stadium is a municipal sports ground. Name and description are stored in
// all three platform languages; clients receive a single localized pair.
type Stadium struct {
	ID            int64       `gorm:"primaryKey;column:id" json:"id"`
	NameEn        string      `gorm:"column:name_en" json:"name_en"`
	NameFr        string      `gorm:"column:name_fr" json:"name_fr"`
	NameAr        string      `gorm:"column:name_ar" json:"name_ar"`
	DescriptionEn string      `gorm:"column:description_en" json:"description_en"`
	DescriptionFr string      `gorm:"column:description_fr" json:"description_fr"`
	DescriptionAr string      `gorm:"column:description_ar" json:"description_ar"`
	City          string      `gorm:"column:city;index" json:"city"`
	Address       string      `gorm:"column:address" json:"address"`
	Surface       SurfaceType `gorm:"column:surface" json:"surface"`
	Capacity      int         `gorm:"column:capacity" json:"capacity"`
	HourlyPrice   float64     `gorm:"column:hourly_price" json:"hourly_price"`
	ManagerID     *int64      `gorm:"column:manager_id" json:"manager_id,omitempty"`
	IsActive      bool        `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"column:updated_at" json:"-"`
}

func (Stadium) TableName() string { return "stadiums" }

// LocalizedName returns the stadium name for the given locale.
func (s *Stadium) LocalizedName(l Locale) string {
	switch l {
	case LocaleFR:
		return s.NameFr
	case LocaleAR:
		return s.NameAr
	default:
		return s.NameEn
	}
}

// LocalizedDescription returns the description for the given locale.
func (s *Stadium) LocalizedDescription(l Locale) string {
	switch l {
	case LocaleFR:
		return s.DescriptionFr
	case LocaleAR:
		return s.DescriptionAr
	default:
		return s.DescriptionEn
	}
}
