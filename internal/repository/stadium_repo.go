package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"malaeb/internal/domain"
)

var ErrStadiumNotFound = errors.New("stadium not found")

type StadiumRepository struct {
	db *gorm.DB
}

func NewStadiumRepository(db *gorm.DB) *StadiumRepository {
	return &StadiumRepository{db: db}
}

func (r *StadiumRepository) Create(ctx context.Context, s *domain.Stadium) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StadiumRepository) GetByID(ctx context.Context, id int64) (*domain.Stadium, error) {
	var s domain.Stadium
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStadiumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StadiumFilter narrows the public catalog listing.
type StadiumFilter struct {
	City    string
	Surface domain.SurfaceType
}

func (r *StadiumRepository) ListActive(ctx context.Context, f StadiumFilter, limit, offset int) ([]domain.Stadium, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Stadium{}).Where("is_active = ?", true)
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Surface != "" {
		q = q.Where("surface = ?", f.Surface)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Stadium
	q = q.Order("name_en ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *StadiumRepository) Update(ctx context.Context, s *domain.Stadium) error {
	return r.db.WithContext(ctx).Save(s).Error
}
