package domain

import (
	"math"
	"strings"
	"time"
)

// FoodPreset is a reusable template for prefilling food entries.
type FoodPreset struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	DefaultPortion string    `json:"defaultPortion" db:"default_portion"`
	CaloriesIn     float64   `json:"caloriesIn" db:"calories_in"`
	Protein        float64   `json:"protein" db:"protein"`
	Carbs          float64   `json:"carbs" db:"carbs"`
	Fat            float64   `json:"fat" db:"fat"`
	VitaminNote    string    `json:"vitaminText" db:"vitamin_note"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type PresetParams struct {
	Name           string
	DefaultPortion string
	CaloriesIn     float64
	Protein        float64
	Carbs          float64
	Fat            float64
	VitaminNote    string
}

func NewFoodPreset(p PresetParams) (*FoodPreset, error) {
	now := time.Now().UTC()
	preset := &FoodPreset{
		ID:        NewID(),
		CreatedAt: now,
	}
	if err := preset.Update(p); err != nil {
		return nil, err
	}
	preset.UpdatedAt = now
	return preset, nil
}

func (f *FoodPreset) Update(p PresetParams) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrPresetNameEmpty
	}

	f.Name = name
	f.DefaultPortion = strings.TrimSpace(p.DefaultPortion)
	f.CaloriesIn = Amount(p.CaloriesIn)
	f.Protein = Amount(p.Protein)
	f.Carbs = Amount(p.Carbs)
	f.Fat = Amount(p.Fat)
	f.VitaminNote = strings.TrimSpace(p.VitaminNote)
	f.UpdatedAt = time.Now().UTC()
	return nil
}

// EntryParams prefills a food entry from the preset, scaled by portions.
func (f *FoodPreset) EntryParams(date string, portions float64) (NewEntryParams, error) {
	if math.IsNaN(portions) || math.IsInf(portions, 0) || portions <= 0 {
		return NewEntryParams{}, ErrInvalidPortions
	}

	desc := f.Name
	if f.DefaultPortion != "" {
		desc = f.Name + " (" + f.DefaultPortion + ")"
	}

	return NewEntryParams{
		Date:        date,
		Kind:        string(EntryKindFood),
		Description: desc,
		CaloriesIn:  f.CaloriesIn * portions,
		Protein:     f.Protein * portions,
		Carbs:       f.Carbs * portions,
		Fat:         f.Fat * portions,
		VitaminNote: f.VitaminNote,
	}, nil
}
