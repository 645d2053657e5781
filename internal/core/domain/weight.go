package domain

import (
	"math"
	"time"
)

// WeightSample is a body-weight measurement. One sample represents a date;
// recording another sample for the same date replaces the weight.
type WeightSample struct {
	ID        string    `json:"id" db:"id"`
	Date      string    `json:"date" db:"date"`
	Weight    float64   `json:"weight" db:"weight"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (w WeightSample) DateKey() string { return w.Date }

func NewWeightSample(date string, weight float64) (*WeightSample, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return nil, ErrInvalidWeight
	}

	now := time.Now().UTC()
	return &WeightSample{
		ID:        NewID(),
		Date:      day,
		Weight:    weight,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
