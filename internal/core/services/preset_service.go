package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type PresetService struct {
	repo    domain.PresetRepository
	entries *EntryService
}

func NewPresetService(repo domain.PresetRepository, entries *EntryService) *PresetService {
	return &PresetService{
		repo:    repo,
		entries: entries,
	}
}

func (s *PresetService) Create(ctx context.Context, params domain.PresetParams) (*domain.FoodPreset, error) {
	preset, err := domain.NewFoodPreset(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, preset); err != nil {
		return nil, err
	}

	return preset, nil
}

func (s *PresetService) List(ctx context.Context) ([]domain.FoodPreset, error) {
	return s.repo.List(ctx)
}

func (s *PresetService) Update(ctx context.Context, id string, params domain.PresetParams) (*domain.FoodPreset, error) {
	preset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := preset.Update(params); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, preset); err != nil {
		return nil, err
	}

	return preset, nil
}

func (s *PresetService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Log creates a food entry on date from the preset, scaled by portions.
func (s *PresetService) Log(ctx context.Context, id, date string, portions float64) (*domain.LogEntry, error) {
	preset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	params, err := preset.EntryParams(date, portions)
	if err != nil {
		return nil, err
	}

	return s.entries.Create(ctx, params)
}
