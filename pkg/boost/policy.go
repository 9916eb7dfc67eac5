package boost

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ReductionPolicy holds the configured constants mapping accumulated
// donations to publish-time reductions. Times of day are fractional
// hours, e.g. 10.5 means 10:30.
type ReductionPolicy struct {
	SatsPerMinute int64   // satoshis consumed per minute of reduction
	MaxReduction  int     // maximum total reduction, hours
	EarliestTime  float64 // floor time-of-day, hours; 0 disables the floor
	StartTime     float64 // baseline time-of-day the reduction is subtracted from
	FinalGoal     int64   // funding target, satoshis
}

// Validate checks the policy at startup. An earliest time above the start
// time would invert the floor clamp, so it is rejected here instead of
// producing publish times later than the baseline.
func (p ReductionPolicy) Validate() error {
	if p.SatsPerMinute <= 0 {
		return fmt.Errorf("satoshis_per_minute must be positive, got %d", p.SatsPerMinute)
	}
	if p.MaxReduction < 0 {
		return fmt.Errorf("max_reduction_hours must be non-negative, got %d", p.MaxReduction)
	}
	if p.FinalGoal <= 0 {
		return fmt.Errorf("final_goal must be positive, got %d", p.FinalGoal)
	}
	if p.EarliestTime < 0 || p.EarliestTime >= 24 {
		return fmt.Errorf("earliest_time %v out of range [0, 24)", p.EarliestTime)
	}
	if p.StartTime < 0 || p.StartTime >= 24 {
		return fmt.Errorf("start_time %v out of range [0, 24)", p.StartTime)
	}
	if p.EarliestTime > p.StartTime {
		return fmt.Errorf("earliest_time %v is after start_time %v", p.EarliestTime, p.StartTime)
	}
	return nil
}

// GoalReached reports whether the donation total has met the funding target.
func (p ReductionPolicy) GoalReached(amount int64) bool {
	return amount >= p.FinalGoal
}

// AdjustedTime maps a donation amount to a new publish timestamp derived
// from the original scheduled one. The computation always starts from the
// original time, never from a previously adjusted value, so repeated calls
// cannot drift. The whole calculation stays in integer minutes until the
// final hour/minute split.
//
// Returns false when nothing changes: a non-positive amount, or an adjusted
// timestamp equal to the original down to the second.
func (p ReductionPolicy) AdjustedTime(donationSats int64, original time.Time) (time.Time, bool) {
	if donationSats <= 0 {
		return time.Time{}, false
	}
	orig := original.UTC()

	minutes := donationSats / p.SatsPerMinute
	maxMinutes := int64(p.MaxReduction) * 60
	if minutes > maxMinutes {
		minutes = maxMinutes
	}

	startMinutes := int64(p.StartTime * 60)
	earliestMinutes := int64(p.EarliestTime * 60)

	newMinutes := startMinutes - minutes
	if earliestMinutes > 0 && newMinutes < earliestMinutes {
		newMinutes = earliestMinutes
	}

	// day rollover, evaluated in minutes of the day
	days := 0
	switch {
	case newMinutes < 0:
		days = -1
		newMinutes += minutesPerDay
	case newMinutes >= minutesPerDay:
		days = int(newMinutes / minutesPerDay)
		newMinutes %= minutesPerDay
	}

	adjusted := time.Date(orig.Year(), orig.Month(), orig.Day(),
		int(newMinutes/60), int(newMinutes%60), 0, 0, time.UTC).AddDate(0, 0, days)

	if adjusted.Equal(orig.Truncate(time.Second)) {
		return time.Time{}, false
	}
	return adjusted, true
}

// Reduction returns the clamped reduction for an amount, in minutes.
// Used for logging and notifications.
func (p ReductionPolicy) Reduction(donationSats int64) int64 {
	if donationSats <= 0 || p.SatsPerMinute <= 0 {
		return 0
	}
	minutes := donationSats / p.SatsPerMinute
	if maxMinutes := int64(p.MaxReduction) * 60; minutes > maxMinutes {
		return maxMinutes
	}
	return minutes
}
