package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

func TestNewLogEntry(t *testing.T) {
	t.Run("Success: Normalizes input", func(t *testing.T) {
		e, err := domain.NewLogEntry(domain.NewEntryParams{
			Date:        "2024-03-01",
			Kind:        "Activity",
			Description: "  30 min run ",
			CaloriesOut: 320,
			Protein:     math.NaN(),
			Fat:         -4,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, domain.EntryKindActivity, e.Kind)
		assert.Equal(t, "30 min run", e.Description)
		assert.Equal(t, "30 min run", e.Explanation)
		assert.Equal(t, 320.0, e.CaloriesOut)
		assert.Zero(t, e.Protein)
		assert.Zero(t, e.Fat)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("Success: Missing kind defaults to food", func(t *testing.T) {
		e, err := domain.NewLogEntry(domain.NewEntryParams{Date: "2024-03-01", Description: "eggs"})
		require.NoError(t, err)
		assert.Equal(t, domain.EntryKindFood, e.Kind)
	})

	t.Run("Success: Identifiers follow creation order", func(t *testing.T) {
		first, err := domain.NewLogEntry(domain.NewEntryParams{Date: "2024-03-01", Description: "a"})
		require.NoError(t, err)
		second, err := domain.NewLogEntry(domain.NewEntryParams{Date: "2024-03-01", Description: "b"})
		require.NoError(t, err)

		assert.Less(t, first.ID, second.ID)
	})

	t.Run("Fail: Validation errors", func(t *testing.T) {
		_, err := domain.NewLogEntry(domain.NewEntryParams{Date: "2024-03-01", Description: "   "})
		assert.ErrorIs(t, err, domain.ErrDescriptionEmpty)

		_, err = domain.NewLogEntry(domain.NewEntryParams{Description: "eggs"})
		assert.ErrorIs(t, err, domain.ErrDateRequired)

		_, err = domain.NewLogEntry(domain.NewEntryParams{Date: "2024-03-01", Kind: "sleep", Description: "nap"})
		assert.ErrorIs(t, err, domain.ErrInvalidEntryKind)
	})
}

func TestNewWeightSample(t *testing.T) {
	s, err := domain.NewWeightSample("2024-03-01", 78.4)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", s.Date)
	assert.Equal(t, 78.4, s.Weight)

	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := domain.NewWeightSample("2024-03-01", w)
		assert.ErrorIs(t, err, domain.ErrInvalidWeight)
	}

	_, err = domain.NewWeightSample("", 80)
	assert.ErrorIs(t, err, domain.ErrDateRequired)
}

func TestLenientNumber(t *testing.T) {
	var body struct {
		A domain.LenientNumber `json:"a"`
		B domain.LenientNumber `json:"b"`
		C domain.LenientNumber `json:"c"`
		D domain.LenientNumber `json:"d"`
		E domain.LenientNumber `json:"e"`
		F domain.LenientNumber `json:"f"`
	}

	err := json.Unmarshal([]byte(`{"a": 120.5, "b": " 80 ", "c": null, "d": "abc", "e": true}`), &body)
	require.NoError(t, err)

	assert.Equal(t, 120.5, body.A.Float())
	assert.True(t, body.A.Valid)
	assert.Equal(t, 80.0, body.B.Float())
	assert.False(t, body.C.Valid)
	assert.Zero(t, body.D.Float())
	assert.False(t, body.D.Valid)
	assert.Zero(t, body.E.Float())
	assert.False(t, body.F.Valid)

	body.A = domain.LenientNumber{Value: -3, Valid: true}
	assert.Zero(t, body.A.Float())
}

func TestProfileApply(t *testing.T) {
	p := domain.Profile{CalorieBudget: 2000, ProteinTarget: 120}
	budget := 1800.0

	p.Apply(domain.ProfilePatch{CalorieBudget: &budget})

	assert.Equal(t, 1800.0, p.CalorieBudget)
	assert.Equal(t, 120.0, p.ProteinTarget)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestFoodPreset(t *testing.T) {
	t.Run("Success: Prefills a scaled food entry", func(t *testing.T) {
		p, err := domain.NewFoodPreset(domain.PresetParams{
			Name: " Oats ", DefaultPortion: "50 g", CaloriesIn: 190, Protein: 6.5, Carbs: 33, Fat: 3.5,
		})
		require.NoError(t, err)
		assert.Equal(t, "Oats", p.Name)

		params, err := p.EntryParams("2024-03-01", 2)
		require.NoError(t, err)
		assert.Equal(t, "food", params.Kind)
		assert.Equal(t, "Oats (50 g)", params.Description)
		assert.Equal(t, 380.0, params.CaloriesIn)
		assert.Equal(t, 13.0, params.Protein)
		assert.Equal(t, 7.0, params.Fat)
	})

	t.Run("Fail: Empty name and bad portions", func(t *testing.T) {
		_, err := domain.NewFoodPreset(domain.PresetParams{Name: ""})
		assert.ErrorIs(t, err, domain.ErrPresetNameEmpty)

		p, err := domain.NewFoodPreset(domain.PresetParams{Name: "Apple"})
		require.NoError(t, err)
		_, err = p.EntryParams("2024-03-01", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPortions)
	})
}
