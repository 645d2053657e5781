package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

var (
	_ domain.EntryRepository   = (*InMemoryEntryRepository)(nil)
	_ domain.WeightRepository  = (*InMemoryWeightRepository)(nil)
	_ domain.ProfileRepository = (*InMemoryProfileRepository)(nil)
	_ domain.PresetRepository  = (*InMemoryPresetRepository)(nil)
)

type InMemoryEntryRepository struct {
	store map[string]domain.LogEntry

	mu sync.RWMutex
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{
		store: make(map[string]domain.LogEntry),
	}
}

func (r *InMemoryEntryRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[entry.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store[entry.ID] = *entry
	return nil
}

func (r *InMemoryEntryRepository) List(ctx context.Context) ([]domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.LogEntry, 0, len(r.store))
	for _, e := range r.store {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return entries, nil
}

// InMemoryWeightRepository keys samples by date, which makes the
// one-sample-per-date rule structural.
type InMemoryWeightRepository struct {
	byDate map[string]domain.WeightSample

	mu sync.RWMutex
}

func NewInMemoryWeightRepository() *InMemoryWeightRepository {
	return &InMemoryWeightRepository{
		byDate: make(map[string]domain.WeightSample),
	}
}

func (r *InMemoryWeightRepository) Upsert(ctx context.Context, s *domain.WeightSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byDate[s.Date]; ok {
		existing.Weight = s.Weight
		existing.UpdatedAt = s.UpdatedAt
		*s = existing
	}
	r.byDate[s.Date] = *s
	return nil
}

func (r *InMemoryWeightRepository) List(ctx context.Context) ([]domain.WeightSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	samples := make([]domain.WeightSample, 0, len(r.byDate))
	for _, s := range r.byDate {
		samples = append(samples, s)
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Date < samples[j].Date
	})

	return samples, nil
}

type InMemoryProfileRepository struct {
	profile *domain.Profile

	mu sync.Mutex
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{}
}

func (r *InMemoryProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil {
		r.profile = &domain.Profile{UpdatedAt: time.Now().UTC()}
	}
	copied := *r.profile
	return &copied, nil
}

func (r *InMemoryProfileRepository) Save(ctx context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *p
	r.profile = &copied
	return nil
}

type InMemoryPresetRepository struct {
	store map[string]domain.FoodPreset

	mu sync.RWMutex
}

func NewInMemoryPresetRepository() *InMemoryPresetRepository {
	return &InMemoryPresetRepository{
		store: make(map[string]domain.FoodPreset),
	}
}

func (r *InMemoryPresetRepository) Create(ctx context.Context, p *domain.FoodPreset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store[p.ID] = *p
	return nil
}

func (r *InMemoryPresetRepository) GetByID(ctx context.Context, id string) (*domain.FoodPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[id]
	if !ok {
		return nil, domain.ErrPresetNotFound
	}
	return &p, nil
}

func (r *InMemoryPresetRepository) List(ctx context.Context) ([]domain.FoodPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	presets := make([]domain.FoodPreset, 0, len(r.store))
	for _, p := range r.store {
		presets = append(presets, p)
	}

	sort.Slice(presets, func(i, j int) bool {
		if presets[i].Name != presets[j].Name {
			return presets[i].Name < presets[j].Name
		}
		return presets[i].ID < presets[j].ID
	})

	return presets, nil
}

func (r *InMemoryPresetRepository) Update(ctx context.Context, p *domain.FoodPreset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[p.ID]; !ok {
		return domain.ErrPresetNotFound
	}
	r.store[p.ID] = *p
	return nil
}

func (r *InMemoryPresetRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrPresetNotFound
	}
	delete(r.store, id)
	return nil
}
