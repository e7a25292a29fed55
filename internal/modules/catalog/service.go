package catalog

import (
	"context"

	"malaeb/internal/domain"
	"malaeb/internal/repository"
)

type StadiumRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Stadium, error)
	ListActive(ctx context.Context, f repository.StadiumFilter, limit, offset int) ([]domain.Stadium, int64, error)
}

type Service struct {
	stadiums StadiumRepositoryInterface
}

func NewService(stadiums StadiumRepositoryInterface) *Service {
	return &Service{stadiums: stadiums}
}

func (s *Service) List(ctx context.Context, f repository.StadiumFilter, locale domain.Locale, limit, offset int) (*StadiumListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, total, err := s.stadiums.ListActive(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*StadiumResponse, len(rows))
	for i := range rows {
		items[i] = stadiumResponse(&rows[i], locale)
	}
	return &StadiumListResponse{Stadiums: items, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id int64, locale domain.Locale) (*StadiumResponse, error) {
	stadium, err := s.stadiums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return stadiumResponse(stadium, locale), nil
}
