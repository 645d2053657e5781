package domain

import "strings"

// Dated is implemented by every series element the range filter can slice.
type Dated interface {
	DateKey() string
}

// DailyAggregate is the sum of every entry sharing one calendar date.
type DailyAggregate struct {
	Date        string  `json:"date"`
	CaloriesIn  float64 `json:"caloriesIn"`
	CaloriesOut float64 `json:"caloriesOut"`
	Net         float64 `json:"net"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

func (d DailyAggregate) DateKey() string { return d.Date }

// DashboardSummary describes the reference day plus the weight trend of the
// active series. Nil pointers mean "absent", which differs from zero.
type DashboardSummary struct {
	Date         string        `json:"date"`
	CaloriesIn   float64       `json:"caloriesIn"`
	CaloriesOut  float64       `json:"caloriesOut"`
	Net          float64       `json:"net"`
	Protein      float64       `json:"protein"`
	Carbs        float64       `json:"carbs"`
	Fat          float64       `json:"fat"`
	LatestWeight *WeightSample `json:"latestWeight"`
	WeightDelta  *float64      `json:"weightDelta"`
}

type Range string

const (
	RangeAll       Range = "all"
	RangeLast7     Range = "7"
	RangeLast30    Range = "30"
	RangeTodayOnly Range = "today"
)

func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return RangeAll, nil
	case "7", "last7":
		return RangeLast7, nil
	case "30", "last30":
		return RangeLast30, nil
	case "1", "today":
		return RangeTodayOnly, nil
	default:
		return "", ErrInvalidRange
	}
}

// Days is the window length in calendar days, 0 for RangeAll.
func (r Range) Days() int {
	switch r {
	case RangeLast7:
		return 7
	case RangeLast30:
		return 30
	case RangeTodayOnly:
		return 1
	default:
		return 0
	}
}

// Progress compares the reference day against the profile goals. A field is
// nil when the matching goal is not set.
type Progress struct {
	CalorieBudget     float64  `json:"calorieBudget"`
	RemainingCalories *float64 `json:"remainingCalories"`
	ProteinTarget     float64  `json:"proteinTarget"`
	RemainingProtein  *float64 `json:"remainingProtein"`
}

// Dashboard is everything the client needs to render one screen.
type Dashboard struct {
	Range         Range            `json:"range"`
	ReferenceDate string           `json:"referenceDate"`
	Today         DashboardSummary `json:"today"`
	Daily         []DailyAggregate `json:"daily"`
	Weights       []WeightSample   `json:"weights"`
	Recent        []LogEntry       `json:"recent"`
	Profile       Profile          `json:"profile"`
	Presets       []FoodPreset     `json:"presets"`
	Progress      Progress         `json:"progress"`
}
