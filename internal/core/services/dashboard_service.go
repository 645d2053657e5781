package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/kanso-calories/internal/core/aggregate"
	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

type DashboardService struct {
	entries  domain.EntryRepository
	weights  domain.WeightRepository
	profiles domain.ProfileRepository
	presets  domain.PresetRepository

	location *time.Location
	now      func() time.Time
}

func NewDashboardService(
	entries domain.EntryRepository,
	weights domain.WeightRepository,
	profiles domain.ProfileRepository,
	presets domain.PresetRepository,
	location *time.Location,
) *DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardService{
		entries:  entries,
		weights:  weights,
		profiles: profiles,
		presets:  presets,
		location: location,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock used to derive today.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

type DashboardQuery struct {
	Range domain.Range
	// Date overrides the reference day; empty means today.
	Date        string
	RecentLimit int
}

// Snapshot is the full set of collections the dashboard is computed from.
type Snapshot struct {
	Entries []domain.LogEntry
	Weights []domain.WeightSample
	Profile domain.Profile
	Presets []domain.FoodPreset
}

// Today returns the current calendar day in the service location.
func (s *DashboardService) Today() string {
	return domain.Today(s.now(), s.location)
}

// LoadSnapshot fetches all collections concurrently. If any fetch fails the
// others are cancelled and a single ErrDashboardLoad is returned.
func (s *DashboardService) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.entries.List(gctx)
		if err != nil {
			return fmt.Errorf("entries: %w", err)
		}
		snap.Entries = entries
		return nil
	})

	g.Go(func() error {
		weights, err := s.weights.List(gctx)
		if err != nil {
			return fmt.Errorf("weights: %w", err)
		}
		snap.Weights = weights
		return nil
	})

	g.Go(func() error {
		profile, err := s.profiles.Get(gctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		snap.Profile = *profile
		return nil
	})

	g.Go(func() error {
		presets, err := s.presets.List(gctx)
		if err != nil {
			return fmt.Errorf("presets: %w", err)
		}
		snap.Presets = presets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDashboardLoad, err)
	}

	return &snap, nil
}

func (s *DashboardService) Load(ctx context.Context, q DashboardQuery) (*domain.Dashboard, error) {
	ref := s.Today()
	if q.Date != "" {
		parsed, err := domain.ParseDate(q.Date)
		if err != nil {
			return nil, err
		}
		ref = parsed
	}

	rng := q.Range
	if rng == "" {
		rng = domain.RangeAll
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return Build(snap, rng, ref, q.RecentLimit)
}

// Build recomputes every derived view from snap. It performs no I/O.
func Build(snap *Snapshot, rng domain.Range, ref string, recentLimit int) (*domain.Dashboard, error) {
	days := aggregate.ByDay(snap.Entries)
	series := aggregate.WeightSeries(snap.Weights)

	filteredDays, err := aggregate.FilterByRange(days, rng, ref)
	if err != nil {
		return nil, err
	}

	filteredWeights, err := aggregate.FilterByRange(series, rng, ref)
	if err != nil {
		return nil, err
	}

	today := aggregate.Summarize(days, filteredWeights, ref)

	presets := snap.Presets
	if presets == nil {
		presets = []domain.FoodPreset{}
	}

	return &domain.Dashboard{
		Range:         rng,
		ReferenceDate: ref,
		Today:         today,
		Daily:         filteredDays,
		Weights:       filteredWeights,
		Recent:        aggregate.RecentEntries(snap.Entries, recentLimit),
		Profile:       snap.Profile,
		Presets:       presets,
		Progress:      progress(snap.Profile, today),
	}, nil
}

func progress(p domain.Profile, today domain.DashboardSummary) domain.Progress {
	out := domain.Progress{
		CalorieBudget: p.CalorieBudget,
		ProteinTarget: p.ProteinTarget,
	}
	if p.CalorieBudget > 0 {
		remaining := p.CalorieBudget - today.Net
		out.RemainingCalories = &remaining
	}
	if p.ProteinTarget > 0 {
		remaining := p.ProteinTarget - today.Protein
		out.RemainingProtein = &remaining
	}
	return out
}
