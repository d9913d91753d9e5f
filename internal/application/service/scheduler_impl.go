package service

import (
	"context"
	"fmt"

	"taller/internal/application/dto"
	"taller/internal/infrastructure/scheduler"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	scheduleSvc   ScheduleService
	log           logger.Logger
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	scheduleSvc ScheduleService,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		scheduleSvc:   scheduleSvc,
		log:           log,
	}
}

// StartDailyScan registers the recurring due-reminder scan.
func (s *schedulerService) StartDailyScan(cronExpr string) error {
	jobFunc := func() {
		s.log.Info("Executing scheduled due-reminder scan")
		result, err := s.scheduleSvc.RunScan(context.Background(), dto.ScanOptions{})
		if err != nil {
			s.log.Error("Scheduled scan failed", err)
			return
		}
		s.log.Info(fmt.Sprintf("Scheduled scan finished: sent=%d errors=%d", result.Sent, result.Errors))
	}

	if _, err := s.cronScheduler.AddJob(cronExpr, jobFunc); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.log.Info(fmt.Sprintf("Due-reminder scan scheduled with spec %q", cronExpr))
	return nil
}

// Stop stops the underlying scheduler.
func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}
