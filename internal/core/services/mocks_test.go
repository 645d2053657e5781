package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type MockEntryRepo struct {
	mock.Mock
}

func (m *MockEntryRepo) Create(ctx context.Context, entry *domain.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

type MockWeightRepo struct {
	mock.Mock
}

func (m *MockWeightRepo) Upsert(ctx context.Context, s *domain.WeightSample) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockWeightRepo) List(ctx context.Context) ([]domain.WeightSample, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeightSample), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Save(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockPresetRepo struct {
	mock.Mock
}

func (m *MockPresetRepo) Create(ctx context.Context, p *domain.FoodPreset) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPresetRepo) GetByID(ctx context.Context, id string) (*domain.FoodPreset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodPreset), args.Error(1)
}

func (m *MockPresetRepo) List(ctx context.Context) ([]domain.FoodPreset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodPreset), args.Error(1)
}

func (m *MockPresetRepo) Update(ctx context.Context, p *domain.FoodPreset) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPresetRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
