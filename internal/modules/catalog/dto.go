package catalog

import (
	"malaeb/internal/domain"
)

// StadiumResponse is the single-locale public shape of a stadium.
type StadiumResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Surface     string  `json:"surface"`
	Capacity    int     `json:"capacity"`
	HourlyPrice float64 `json:"hourly_price"`
}

func stadiumResponse(s *domain.Stadium, locale domain.Locale) *StadiumResponse {
	return &StadiumResponse{
		ID:          s.ID,
		Name:        s.LocalizedName(locale),
		Description: s.LocalizedDescription(locale),
		City:        s.City,
		Address:     s.Address,
		Surface:     string(s.Surface),
		Capacity:    s.Capacity,
		HourlyPrice: s.HourlyPrice,
	}
}

type StadiumListResponse struct {
	Stadiums []*StadiumResponse `json:"stadiums"`
	Total    int64              `json:"total"`
}
