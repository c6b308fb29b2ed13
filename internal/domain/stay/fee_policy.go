package stay

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StandardCheckoutHour = 12
	day                  = 24 * time.Hour
)

type Assessment struct {
	ExpectedCheckout time.Time
	ExtraDays        int
	LateFee          decimal.Decimal
}

// FeePolicy computes late fees on the hotel's local calendar. It never reads
// the clock; callers pass now explicitly.
type FeePolicy struct {
	location *time.Location
}

func NewFeePolicy(loc *time.Location) FeePolicy {
	if loc == nil {
		loc = time.UTC
	}
	return FeePolicy{location: loc}
}

// ExpectedCheckout is noon local time, plannedDays calendar days after the
// check-in date.
func (p FeePolicy) ExpectedCheckout(checkIn time.Time, plannedDays PlannedDays) time.Time {
	local := checkIn.In(p.location)
	return time.Date(local.Year(), local.Month(), local.Day()+plannedDays.Int(),
		StandardCheckoutHour, 0, 0, 0, p.location)
}

// Assess bills every started 24h period past the expected checkout at the
// daily rate.
func (p FeePolicy) Assess(checkIn time.Time, plannedDays PlannedDays, dailyRate decimal.Decimal, now time.Time) Assessment {
	expected := p.ExpectedCheckout(checkIn, plannedDays)
	if !now.After(expected) {
		return Assessment{ExpectedCheckout: expected, LateFee: decimal.Zero}
	}

	overdue := now.Sub(expected)
	extraDays := int((overdue + day - 1) / day)

	return Assessment{
		ExpectedCheckout: expected,
		ExtraDays:        extraDays,
		LateFee:          dailyRate.Mul(decimal.NewFromInt(int64(extraDays))),
	}
}
