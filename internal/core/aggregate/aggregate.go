// Package aggregate turns raw entry and weight snapshots into the daily
// series, range views and dashboard figures. Every function is pure: inputs
// are never modified and no state survives between calls.
package aggregate

import (
	"sort"
	"strings"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

const DefaultRecentLimit = 10

// ByDay sums entries sharing a date, regardless of kind. Dates without
// entries are absent from the result, which is ordered by date ascending.
// Each total is summed in value order so the result does not depend on the
// order of entries.
func ByDay(entries []domain.LogEntry) []domain.DailyAggregate {
	groups := make(map[string][]domain.LogEntry)
	for _, e := range entries {
		groups[e.Date] = append(groups[e.Date], e)
	}

	days := make([]domain.DailyAggregate, 0, len(groups))
	for date, group := range groups {
		day := domain.DailyAggregate{
			Date:        date,
			CaloriesIn:  sum(group, func(e domain.LogEntry) float64 { return e.CaloriesIn }),
			CaloriesOut: sum(group, func(e domain.LogEntry) float64 { return e.CaloriesOut }),
			Protein:     sum(group, func(e domain.LogEntry) float64 { return e.Protein }),
			Carbs:       sum(group, func(e domain.LogEntry) float64 { return e.Carbs }),
			Fat:         sum(group, func(e domain.LogEntry) float64 { return e.Fat }),
		}
		day.Net = day.CaloriesIn - day.CaloriesOut
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}

func sum(group []domain.LogEntry, field func(domain.LogEntry) float64) float64 {
	values := make([]float64, len(group))
	for i, e := range group {
		values[i] = domain.Amount(field(e))
	}
	sort.Float64s(values)

	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// WeightSeries sorts samples by date ascending. When two samples share a date
// the one submitted later (later UpdatedAt, then later position) wins.
func WeightSeries(samples []domain.WeightSample) []domain.WeightSample {
	latest := make(map[string]int, len(samples))
	for i, s := range samples {
		prev, ok := latest[s.Date]
		if !ok || !s.UpdatedAt.Before(samples[prev].UpdatedAt) {
			latest[s.Date] = i
		}
	}

	series := make([]domain.WeightSample, 0, len(latest))
	for _, i := range latest {
		series = append(series, samples[i])
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// FilterByRange keeps the elements of series inside the window r ending at
// ref, preserving order. Last7 and Last30 keep [ref-(N-1), ref] by calendar
// day; TodayOnly keeps elements dated exactly ref.
func FilterByRange[T domain.Dated](series []T, r domain.Range, ref string) ([]T, error) {
	if r == domain.RangeAll {
		return series, nil
	}

	ref, err := domain.ParseDate(ref)
	if err != nil {
		return nil, err
	}

	days := r.Days()
	if days == 0 {
		return nil, domain.ErrInvalidRange
	}

	from, err := domain.AddDays(ref, -(days - 1))
	if err != nil {
		return nil, err
	}

	filtered := make([]T, 0, len(series))
	for _, item := range series {
		d := item.DateKey()
		if d >= from && d <= ref {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Summarize builds the dashboard figures for today. days is looked up by exact
// date; weights must already be sorted by date ascending.
func Summarize(days []domain.DailyAggregate, weights []domain.WeightSample, today string) domain.DashboardSummary {
	summary := domain.DashboardSummary{Date: today}

	for _, d := range days {
		if d.Date == today {
			summary.CaloriesIn = d.CaloriesIn
			summary.CaloriesOut = d.CaloriesOut
			summary.Net = d.Net
			summary.Protein = d.Protein
			summary.Carbs = d.Carbs
			summary.Fat = d.Fat
			break
		}
	}

	if len(weights) == 0 {
		return summary
	}

	latest := weights[len(weights)-1]
	summary.LatestWeight = &latest

	if len(weights) >= 2 {
		delta := latest.Weight - weights[0].Weight
		summary.WeightDelta = &delta
	}

	return summary
}

// RecentEntries returns at most limit entries, newest date first. Entries on
// the same date are ordered by identifier descending, which follows insertion
// order for time-ordered identifiers. A limit below 1 means DefaultRecentLimit.
func RecentEntries(entries []domain.LogEntry, limit int) []domain.LogEntry {
	if limit < 1 {
		limit = DefaultRecentLimit
	}

	sorted := make([]domain.LogEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		if c := strings.Compare(sorted[i].Date, sorted[j].Date); c != 0 {
			return c > 0
		}
		return sorted[i].ID > sorted[j].ID
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
