package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type ProfileService struct {
	repo domain.ProfileRepository
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *ProfileService) Update(ctx context.Context, patch domain.ProfilePatch) (*domain.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile.Apply(patch)

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
