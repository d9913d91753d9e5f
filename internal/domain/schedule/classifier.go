package schedule

import (
	"sort"
	"time"
)

// Classifier determines the applicable maintenance tier for a vehicle from
// its service history.
type Classifier struct {
	tiers TierTable
}

// NewClassifier creates a classifier over the given tier table. The table is
// assumed validated (non-empty, thresholds strictly decreasing, catch-all
// last).
func NewClassifier(tiers TierTable) *Classifier {
	return &Classifier{tiers: tiers}
}

// Classify returns the tier for the given service dates. Same-day services
// count once; with fewer than two distinct days there is no usable gap and
// the default (longest) tier applies. Input order does not matter.
func (c *Classifier) Classify(dates []time.Time) Tier {
	days := distinctDaysDesc(dates)
	if len(days) < 2 {
		return c.tiers.Default()
	}

	gap := daysBetween(days[1], days[0])

	for _, tier := range c.tiers {
		if tier.ThresholdDays < gap {
			return tier
		}
	}
	// Unreachable with a catch-all last tier, but never return nothing.
	return c.tiers[len(c.tiers)-1]
}

// Day truncates a timestamp to its calendar day (midnight UTC), so that
// differences between days are exact multiples of 24h.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	diff := int(Day(to).Sub(Day(from)).Hours() / 24)
	if diff < 0 {
		return -diff
	}
	return diff
}

func distinctDaysDesc(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := Day(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}
