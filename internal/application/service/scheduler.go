package service

// SchedulerService defines the interface for the periodic scan trigger.
type SchedulerService interface {
	// StartDailyScan registers the recurring due-reminder scan under the
	// given cron expression.
	StartDailyScan(cronExpr string) error
	// Stop stops the underlying scheduler, waiting for a running scan to
	// finish.
	Stop()
}
