package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
)

func TestEntryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists a normalized entry", func(t *testing.T) {
		repo := new(MockEntryRepo)
		svc := services.NewEntryService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(e *domain.LogEntry) bool {
			return e.Description == "2 eggs" && e.CaloriesIn == 140 && e.Date == "2024-03-01"
		})).Return(nil)

		entry, err := svc.Create(ctx, domain.NewEntryParams{
			Date: "2024-03-01", Kind: "food", Description: " 2 eggs ", CaloriesIn: 140,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.EntryKindFood, entry.Kind)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Validation error never reaches the store", func(t *testing.T) {
		repo := new(MockEntryRepo)
		svc := services.NewEntryService(repo)

		entry, err := svc.Create(ctx, domain.NewEntryParams{Date: "2024-03-01", Description: ""})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, entry)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Store error propagates", func(t *testing.T) {
		repo := new(MockEntryRepo)
		svc := services.NewEntryService(repo)

		dbErr := errors.New("disk full")
		repo.On("Create", ctx, mock.Anything).Return(dbErr)

		entry, err := svc.Create(ctx, domain.NewEntryParams{Date: "2024-03-01", Description: "toast"})

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, entry)
	})
}

func TestEntryService_Recent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEntryRepo)
	svc := services.NewEntryService(repo)

	repo.On("List", ctx).Return([]domain.LogEntry{
		{ID: "1", Date: "2024-01-01"},
		{ID: "2", Date: "2024-01-03"},
		{ID: "3", Date: "2024-01-02"},
	}, nil)

	recent, err := svc.Recent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2", recent[0].ID)
	assert.Equal(t, "3", recent[1].ID)
}

func TestWeightService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Record upserts the sample", func(t *testing.T) {
		repo := new(MockWeightRepo)
		svc := services.NewWeightService(repo)

		repo.On("Upsert", ctx, mock.MatchedBy(func(s *domain.WeightSample) bool {
			return s.Date == "2024-03-01" && s.Weight == 79.2
		})).Return(nil)

		sample, err := svc.Record(ctx, "2024-03-01", 79.2)

		require.NoError(t, err)
		assert.Equal(t, 79.2, sample.Weight)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Invalid weight is rejected before the store", func(t *testing.T) {
		repo := new(MockWeightRepo)
		svc := services.NewWeightService(repo)

		_, err := svc.Record(ctx, "2024-03-01", 0)

		assert.ErrorIs(t, err, domain.ErrInvalidWeight)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Success: List returns a date ordered series", func(t *testing.T) {
		repo := new(MockWeightRepo)
		svc := services.NewWeightService(repo)

		repo.On("List", ctx).Return([]domain.WeightSample{
			{Date: "2024-03-02", Weight: 79},
			{Date: "2024-03-01", Weight: 80},
		}, nil)

		series, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Equal(t, "2024-03-01", series[0].Date)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepo)
	svc := services.NewProfileService(repo)

	repo.On("Get", ctx).Return(&domain.Profile{CalorieBudget: 2000, ProteinTarget: 100}, nil)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	target := 140.0
	profile, err := svc.Update(ctx, domain.ProfilePatch{ProteinTarget: &target})

	require.NoError(t, err)
	assert.Equal(t, 2000.0, profile.CalorieBudget)
	assert.Equal(t, 140.0, profile.ProteinTarget)
	repo.AssertExpectations(t)
}

func TestPresetService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Log creates a prefilled entry", func(t *testing.T) {
		presetRepo := new(MockPresetRepo)
		entryRepo := new(MockEntryRepo)
		svc := services.NewPresetService(presetRepo, services.NewEntryService(entryRepo))

		presetRepo.On("GetByID", ctx, "p1").Return(&domain.FoodPreset{
			ID: "p1", Name: "Yogurt", CaloriesIn: 100, Protein: 10,
		}, nil)
		entryRepo.On("Create", ctx, mock.Anything).Return(nil)

		entry, err := svc.Log(ctx, "p1", "2024-03-01", 1.5)

		require.NoError(t, err)
		assert.Equal(t, "Yogurt", entry.Description)
		assert.Equal(t, 150.0, entry.CaloriesIn)
		assert.Equal(t, 15.0, entry.Protein)
	})

	t.Run("Fail: Update of a missing preset", func(t *testing.T) {
		presetRepo := new(MockPresetRepo)
		svc := services.NewPresetService(presetRepo, nil)

		presetRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrPresetNotFound)

		_, err := svc.Update(ctx, "nope", domain.PresetParams{Name: "x"})

		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
		presetRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Invalid update leaves the store untouched", func(t *testing.T) {
		presetRepo := new(MockPresetRepo)
		svc := services.NewPresetService(presetRepo, nil)

		presetRepo.On("GetByID", ctx, "p1").Return(&domain.FoodPreset{ID: "p1", Name: "Apple"}, nil)

		_, err := svc.Update(ctx, "p1", domain.PresetParams{Name: "  "})

		assert.ErrorIs(t, err, domain.ErrPresetNameEmpty)
		presetRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
