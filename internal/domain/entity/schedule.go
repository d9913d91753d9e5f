package entity

import "time"

// VehicleSchedule is the derived schedule triple (plus the matching category)
// written back to a vehicle by the reminder recomputation. All fields nil
// means "no service history, no schedule".
type VehicleSchedule struct {
	CategoryID   *uint
	IntervalDays *int
	LastService  *time.Time
	NextReminder *time.Time
}
