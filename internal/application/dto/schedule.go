package dto

import "time"

// ScheduleResult is the outcome of a reminder recomputation for one vehicle.
type ScheduleResult struct {
	Category     string    `json:"category"`
	IntervalDays int       `json:"interval_days"`
	LastService  time.Time `json:"last_service"`
	NextReminder time.Time `json:"next_reminder"`
}

// ScanOptions controls a due-reminder scan run. With Simulate set the scan
// records each would-be notification without contacting the transport.
type ScanOptions struct {
	Simulate bool `json:"simulate"`
}

// ScanResult is the aggregate outcome of a due-reminder scan.
type ScanResult struct {
	Sent   int `json:"sent"`
	Errors int `json:"errors"`
}
