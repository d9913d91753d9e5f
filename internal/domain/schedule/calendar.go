package schedule

import "time"

// Holiday is a fixed month-day pair, not year dependent (e.g. Jan 1).
type Holiday struct {
	Month time.Month
	Day   int
}

// Calendar rolls dates forward past weekends and a fixed holiday set.
type Calendar struct {
	holidays map[Holiday]struct{}
}

// NewCalendar creates a calendar with the given fixed holidays.
func NewCalendar(holidays []Holiday) *Calendar {
	set := make(map[Holiday]struct{}, len(holidays))
	for _, h := range holidays {
		set[h] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// IsBusinessDay reports whether t falls on neither a weekend nor a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.holidays[Holiday{Month: t.Month(), Day: t.Day()}]
	return !holiday
}

// NextBusinessDay returns t unchanged if it is a business day, otherwise the
// nearest following business day. Terminates because weekends recur every
// seven days and the holiday set is finite.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
