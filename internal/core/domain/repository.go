package domain

import "context"

type EntryRepository interface {
	// Create persists a new entry.
	Create(ctx context.Context, entry *LogEntry) error

	// List returns every entry, ordered by date then creation time.
	List(ctx context.Context) ([]LogEntry, error)
}

type WeightRepository interface {
	// Upsert stores the sample, replacing the weight of any existing sample
	// with the same date. The stored sample is written back into s.
	Upsert(ctx context.Context, s *WeightSample) error

	// List returns every sample ordered by date ascending.
	List(ctx context.Context) ([]WeightSample, error)
}

type ProfileRepository interface {
	// Get returns the singleton profile, creating the zero profile if needed.
	Get(ctx context.Context) (*Profile, error)

	Save(ctx context.Context, p *Profile) error
}

type PresetRepository interface {
	Create(ctx context.Context, p *FoodPreset) error
	GetByID(ctx context.Context, id string) (*FoodPreset, error)
	List(ctx context.Context) ([]FoodPreset, error)
	Update(ctx context.Context, p *FoodPreset) error
	Delete(ctx context.Context, id string) error
}
