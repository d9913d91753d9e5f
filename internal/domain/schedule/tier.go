package schedule

// Tier maps a usage gap range to a maintenance interval. A vehicle whose gap
// between its two most recent services exceeds ThresholdDays is serviced
// rarely, so it gets this tier's (longer) reminder interval.
type Tier struct {
	Name          string
	ThresholdDays int
	IntervalDays  int
}

// TierTable is an ordered list of tiers, descending by threshold. The last
// tier must have threshold zero so it matches any gap (frequent use, shortest
// interval).
type TierTable []Tier

// Default returns the most conservative tier, i.e. the one with the longest
// interval. It applies when a vehicle has too little history to infer its
// usage intensity.
func (t TierTable) Default() Tier {
	def := t[0]
	for _, tier := range t[1:] {
		if tier.IntervalDays > def.IntervalDays {
			def = tier
		}
	}
	return def
}
