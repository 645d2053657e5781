package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-calories/internal/core/aggregate"
	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type WeightService struct {
	repo domain.WeightRepository
}

func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Record stores the weight for date, replacing any earlier sample of that date.
func (s *WeightService) Record(ctx context.Context, date string, weight float64) (*domain.WeightSample, error) {
	sample, err := domain.NewWeightSample(date, weight)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, sample); err != nil {
		return nil, err
	}

	return sample, nil
}

func (s *WeightService) List(ctx context.Context) ([]domain.WeightSample, error) {
	samples, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.WeightSeries(samples), nil
}
