package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error caused by bad client input.
var ErrValidation = errors.New("validation failed")

var (
	ErrDateRequired       = fmt.Errorf("%w: date is required", ErrValidation)
	ErrInvalidDate        = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrDescriptionEmpty   = fmt.Errorf("%w: please describe what you ate or which activity you did", ErrValidation)
	ErrInvalidEntryKind   = fmt.Errorf("%w: type must be food or activity", ErrValidation)
	ErrInvalidWeight      = fmt.Errorf("%w: please enter a valid weight", ErrValidation)
	ErrPresetNameEmpty    = fmt.Errorf("%w: preset name cannot be empty", ErrValidation)
	ErrInvalidRange       = fmt.Errorf("%w: range must be one of all, 7, 30, today", ErrValidation)
	ErrInvalidPortions    = fmt.Errorf("%w: portions must be a positive number", ErrValidation)
	ErrInvalidRecentLimit = fmt.Errorf("%w: limit must be a positive integer", ErrValidation)
)

var (
	ErrPresetNotFound = errors.New("food preset not found")
	ErrDuplicate      = errors.New("record already exists")
	ErrDashboardLoad  = errors.New("failed to load dashboard data")
)
