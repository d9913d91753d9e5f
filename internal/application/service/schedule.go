package service

import (
	"context"
	"time"

	"taller/internal/application/dto"
)

// Notifier is the outbound messaging transport used to deliver reminders.
// Implemented by the WhatsApp client; tests substitute a fake.
type Notifier interface {
	Send(ctx context.Context, phone, name string, nextDate time.Time) error
}

// ScheduleService defines the interface for the maintenance-interval
// scheduler: per-vehicle reminder recomputation and the due-reminder scan.
type ScheduleService interface {
	// Recompute derives (lastService, nextReminder, intervalDays) from the
	// vehicle's service history and persists them. Returns nil when the
	// vehicle has no service history (schedule cleared). Called whenever a
	// service is recorded and by the scan before each due-check.
	Recompute(ctx context.Context, plate string) (*dto.ScheduleResult, error)
	// RunScan walks all vehicles with a contact, recomputes each schedule,
	// dispatches a notification for every due vehicle and advances its
	// reminder window on confirmed delivery. Per-vehicle failures are counted
	// and never abort the batch.
	RunScan(ctx context.Context, opts dto.ScanOptions) (dto.ScanResult, error)
}
