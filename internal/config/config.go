package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"taller/internal/domain/schedule"
)

const (
	// DefaultCronExpr runs the due-reminder scan every morning at 09:00.
	DefaultCronExpr = "0 9 * * *"

	// DefaultTiers reproduces the workshop's three usage categories:
	// sporadic use (gap > 90d) reminds every 180d, normal use (gap > 30d)
	// every 90d, intense use every 30d.
	DefaultTiers = "BAJA:90:180,MEDIA:30:90,ALTA:0:30"

	// DefaultHolidays are the Argentine immovable holidays.
	DefaultHolidays = "01-01,03-24,04-02,05-01,05-25,06-20,07-09,12-08,12-25"
)

// Config holds the scheduler-core configuration supplied at startup.
type Config struct {
	CronExpr string
	Tiers    schedule.TierTable
	Holidays []schedule.Holiday
}

// Load reads the configuration from the environment, applying defaults for
// anything unset, and validates the tier table.
func Load() (*Config, error) {
	tiers, err := ParseTiers(getenv("TIERS", DefaultTiers))
	if err != nil {
		return nil, err
	}
	holidays, err := ParseHolidays(getenv("HOLIDAYS", DefaultHolidays))
	if err != nil {
		return nil, err
	}
	return &Config{
		CronExpr: getenv("CRON_EXPR", DefaultCronExpr),
		Tiers:    tiers,
		Holidays: holidays,
	}, nil
}

// ParseTiers parses a "name:thresholdDays:intervalDays" comma-separated list
// into a tier table. Thresholds must strictly decrease and the last tier must
// be the catch-all (threshold 0).
func ParseTiers(raw string) (schedule.TierTable, error) {
	var tiers schedule.TierTable
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid tier %q: want name:threshold:interval", part)
		}
		threshold, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil || threshold < 0 {
			return nil, fmt.Errorf("invalid tier threshold in %q", part)
		}
		interval, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || interval <= 0 {
			return nil, fmt.Errorf("invalid tier interval in %q", part)
		}
		tiers = append(tiers, schedule.Tier{
			Name:          strings.ToUpper(strings.TrimSpace(fields[0])),
			ThresholdDays: threshold,
			IntervalDays:  interval,
		})
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("tier table is empty")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].ThresholdDays >= tiers[i-1].ThresholdDays {
			return nil, fmt.Errorf("tier thresholds must strictly decrease: %q", raw)
		}
	}
	if tiers[len(tiers)-1].ThresholdDays != 0 {
		return nil, fmt.Errorf("last tier must be the catch-all (threshold 0): %q", raw)
	}
	return tiers, nil
}

// ParseHolidays parses a "MM-DD" comma-separated list into fixed holidays.
func ParseHolidays(raw string) ([]schedule.Holiday, error) {
	var holidays []schedule.Holiday
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, "-")
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid holiday %q: want MM-DD", part)
		}
		month, err := strconv.Atoi(fields[0])
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("invalid holiday month in %q", part)
		}
		day, err := strconv.Atoi(fields[1])
		if err != nil || day < 1 || day > 31 {
			return nil, fmt.Errorf("invalid holiday day in %q", part)
		}
		holidays = append(holidays, schedule.Holiday{Month: time.Month(month), Day: day})
	}
	return holidays, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
