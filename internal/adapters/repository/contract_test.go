package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type repoSet struct {
	entries  domain.EntryRepository
	weights  domain.WeightRepository
	profiles domain.ProfileRepository
	presets  domain.PresetRepository
}

// runContract exercises behavior every storage backend must share.
func runContract(t *testing.T, repos repoSet) {
	ctx := context.Background()

	t.Run("Entries: Round trip keeps every user supplied field", func(t *testing.T) {
		entry, err := domain.NewLogEntry(domain.NewEntryParams{
			Date: "2024-03-01", Kind: "food", Description: "2 eggs, toast",
			CaloriesIn: 420, Protein: 21.5, Carbs: 30, Fat: 18,
			VitaminNote: "B12", Explanation: "breakfast",
		})
		require.NoError(t, err)
		require.NoError(t, repos.entries.Create(ctx, entry))

		list, err := repos.entries.List(ctx)
		require.NoError(t, err)

		var matches []domain.LogEntry
		for _, e := range list {
			if e.ID == entry.ID {
				matches = append(matches, e)
			}
		}
		require.Len(t, matches, 1)

		got := matches[0]
		assert.Equal(t, entry.Date, got.Date)
		assert.Equal(t, entry.Kind, got.Kind)
		assert.Equal(t, entry.Description, got.Description)
		assert.Equal(t, entry.CaloriesIn, got.CaloriesIn)
		assert.Equal(t, entry.CaloriesOut, got.CaloriesOut)
		assert.Equal(t, entry.Protein, got.Protein)
		assert.Equal(t, entry.Carbs, got.Carbs)
		assert.Equal(t, entry.Fat, got.Fat)
		assert.Equal(t, entry.VitaminNote, got.VitaminNote)
		assert.Equal(t, entry.Explanation, got.Explanation)
		assert.WithinDuration(t, entry.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("Entries: Listed by date ascending", func(t *testing.T) {
		for _, date := range []string{"2024-02-03", "2024-02-01", "2024-02-02"} {
			e, err := domain.NewLogEntry(domain.NewEntryParams{Date: date, Description: "meal " + date})
			require.NoError(t, err)
			require.NoError(t, repos.entries.Create(ctx, e))
		}

		list, err := repos.entries.List(ctx)
		require.NoError(t, err)
		for i := 1; i < len(list); i++ {
			assert.LessOrEqual(t, list[i-1].Date, list[i].Date)
		}
	})

	t.Run("Entries: Duplicate id is rejected", func(t *testing.T) {
		e, err := domain.NewLogEntry(domain.NewEntryParams{Date: "2024-02-01", Description: "dup"})
		require.NoError(t, err)
		require.NoError(t, repos.entries.Create(ctx, e))

		dup := *e
		assert.ErrorIs(t, repos.entries.Create(ctx, &dup), domain.ErrDuplicate)
	})

	t.Run("Weights: Second sample for a date replaces the first", func(t *testing.T) {
		first, err := domain.NewWeightSample("2024-03-05", 80.2)
		require.NoError(t, err)
		require.NoError(t, repos.weights.Upsert(ctx, first))

		second, err := domain.NewWeightSample("2024-03-05", 79.6)
		require.NoError(t, err)
		second.UpdatedAt = second.UpdatedAt.Add(time.Second)
		require.NoError(t, repos.weights.Upsert(ctx, second))

		assert.Equal(t, first.ID, second.ID, "the stored sample keeps its identity")
		assert.Equal(t, 79.6, second.Weight)

		list, err := repos.weights.List(ctx)
		require.NoError(t, err)

		var sameDay []domain.WeightSample
		for _, s := range list {
			if s.Date == "2024-03-05" {
				sameDay = append(sameDay, s)
			}
		}
		require.Len(t, sameDay, 1)
		assert.Equal(t, 79.6, sameDay[0].Weight)
	})

	t.Run("Weights: Concurrent writers leave one sample per date", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := domain.NewWeightSample("2024-04-01", 70+float64(i))
				if assert.NoError(t, err) {
					assert.NoError(t, repos.weights.Upsert(ctx, s))
				}
			}(i)
		}
		wg.Wait()

		list, err := repos.weights.List(ctx)
		require.NoError(t, err)

		count := 0
		for _, s := range list {
			if s.Date == "2024-04-01" {
				count++
			}
		}
		assert.Equal(t, 1, count)

		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].Date, list[i].Date)
		}
	})

	t.Run("Profile: Created with zero defaults and updated in place", func(t *testing.T) {
		p, err := repos.profiles.Get(ctx)
		require.NoError(t, err)
		assert.Zero(t, p.CalorieBudget)
		assert.Zero(t, p.ProteinTarget)

		p.CalorieBudget = 2100
		p.ProteinTarget = 130
		p.UpdatedAt = time.Now().UTC()
		require.NoError(t, repos.profiles.Save(ctx, p))

		again, err := repos.profiles.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2100.0, again.CalorieBudget)
		assert.Equal(t, 130.0, again.ProteinTarget)
	})

	t.Run("Presets: CRUD lifecycle", func(t *testing.T) {
		p, err := domain.NewFoodPreset(domain.PresetParams{Name: "Banana", DefaultPortion: "1 medium", CaloriesIn: 105, Carbs: 27})
		require.NoError(t, err)
		require.NoError(t, repos.presets.Create(ctx, p))

		fetched, err := repos.presets.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Banana", fetched.Name)
		assert.Equal(t, 105.0, fetched.CaloriesIn)

		require.NoError(t, fetched.Update(domain.PresetParams{Name: "Banana", DefaultPortion: "1 large", CaloriesIn: 121, Carbs: 31}))
		require.NoError(t, repos.presets.Update(ctx, fetched))

		list, err := repos.presets.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)

		updated, err := repos.presets.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "1 large", updated.DefaultPortion)
		assert.Equal(t, 121.0, updated.CaloriesIn)

		require.NoError(t, repos.presets.Delete(ctx, p.ID))

		_, err = repos.presets.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
		assert.ErrorIs(t, repos.presets.Delete(ctx, p.ID), domain.ErrPresetNotFound)
		assert.ErrorIs(t, repos.presets.Update(ctx, p), domain.ErrPresetNotFound)
	})
}
