package stay

import (
	"errors"

	"mansion-pos/internal/pkg/patch"
)

const (
	DefaultPlannedDays = 1
	MaxPlannedDays     = 365
)

var (
	ErrInvalidPlannedDays = errors.New("planned days must be between 1 and 365")
	ErrInvalidStatus      = errors.New("invalid stay status")
)

type Status string

const (
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// PlannedDays is the guest-declared length of the stay in nights.
type PlannedDays struct {
	value int
}

// NewPlannedDays defaults an omitted value to one day. Explicit values outside
// [1, MaxPlannedDays] are rejected rather than clamped.
func NewPlannedDays(days *int) (PlannedDays, error) {
	n := patch.Coalesce(days, DefaultPlannedDays)
	if n < 1 || n > MaxPlannedDays {
		return PlannedDays{}, ErrInvalidPlannedDays
	}
	return PlannedDays{value: n}, nil
}

func ReconstructPlannedDays(days int) PlannedDays {
	return PlannedDays{value: days}
}

func (p PlannedDays) Int() int {
	return p.value
}
