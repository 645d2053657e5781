package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EntryKind string

const (
	EntryKindFood     EntryKind = "food"
	EntryKindActivity EntryKind = "activity"
)

func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", EntryKindFood:
		return EntryKindFood, nil
	case EntryKindActivity:
		return EntryKindActivity, nil
	default:
		return "", ErrInvalidEntryKind
	}
}

// LogEntry is one food or activity record. Entries are immutable once stored.
type LogEntry struct {
	ID          string    `json:"id" db:"id"`
	Date        string    `json:"date" db:"date"`
	Kind        EntryKind `json:"type" db:"kind"`
	Description string    `json:"text" db:"description"`
	CaloriesIn  float64   `json:"caloriesIn" db:"calories_in"`
	CaloriesOut float64   `json:"caloriesOut" db:"calories_out"`
	Protein     float64   `json:"protein" db:"protein"`
	Carbs       float64   `json:"carbs" db:"carbs"`
	Fat         float64   `json:"fat" db:"fat"`
	VitaminNote string    `json:"vitaminText" db:"vitamin_note"`
	Explanation string    `json:"explanation" db:"explanation"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// DateKey implements Dated.
func (e LogEntry) DateKey() string { return e.Date }

type NewEntryParams struct {
	Date        string
	Kind        string
	Description string
	CaloriesIn  float64
	CaloriesOut float64
	Protein     float64
	Carbs       float64
	Fat         float64
	VitaminNote string
	Explanation string
}

func NewLogEntry(p NewEntryParams) (*LogEntry, error) {
	date, err := ParseDate(p.Date)
	if err != nil {
		return nil, err
	}

	kind, err := ParseEntryKind(p.Kind)
	if err != nil {
		return nil, err
	}

	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return nil, ErrDescriptionEmpty
	}

	explanation := strings.TrimSpace(p.Explanation)
	if explanation == "" {
		explanation = desc
	}

	return &LogEntry{
		ID:          NewID(),
		Date:        date,
		Kind:        kind,
		Description: desc,
		CaloriesIn:  Amount(p.CaloriesIn),
		CaloriesOut: Amount(p.CaloriesOut),
		Protein:     Amount(p.Protein),
		Carbs:       Amount(p.Carbs),
		Fat:         Amount(p.Fat),
		VitaminNote: strings.TrimSpace(p.VitaminNote),
		Explanation: explanation,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// NewID returns a time-ordered identifier, so identifier order follows
// insertion order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
