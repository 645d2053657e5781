package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-calories/internal/core/aggregate"
	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type EntryService struct {
	repo domain.EntryRepository
}

func NewEntryService(repo domain.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

func (s *EntryService) Create(ctx context.Context, params domain.NewEntryParams) (*domain.LogEntry, error) {
	entry, err := domain.NewLogEntry(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *EntryService) List(ctx context.Context) ([]domain.LogEntry, error) {
	return s.repo.List(ctx)
}

func (s *EntryService) Recent(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.RecentEntries(entries, limit), nil
}
