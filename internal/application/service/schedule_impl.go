package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taller/internal/application/dto"
	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	"taller/internal/domain/schedule"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

type scheduleService struct {
	vehicleRepo  repository.VehicleRepository
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.CategoryRepository
	classifier   *schedule.Classifier
	calendar     *schedule.Calendar
	notifier     Notifier
	log          logger.Logger
}

// NewScheduleService creates a new instance of ScheduleService implementation.
func NewScheduleService(
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.ServiceRepository,
	categoryRepo repository.CategoryRepository,
	classifier *schedule.Classifier,
	calendar *schedule.Calendar,
	notifier Notifier,
	log logger.Logger,
) ScheduleService {
	return &scheduleService{
		vehicleRepo:  vehicleRepo,
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		classifier:   classifier,
		calendar:     calendar,
		notifier:     notifier,
		log:          log,
	}
}

// Recompute derives and persists the schedule for one vehicle.
func (s *scheduleService) Recompute(ctx context.Context, plate string) (*dto.ScheduleResult, error) {
	if _, err := s.vehicleRepo.FindByPlate(ctx, plate); err != nil {
		if errors.Is(err, appErrors.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	dates, err := s.serviceRepo.FindDatesByVehicle(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if len(dates) == 0 {
		// No history: clear the schedule so the vehicle is explicitly
		// unscheduled rather than stuck on stale dates.
		if err := s.vehicleRepo.UpdateSchedule(ctx, plate, entity.VehicleSchedule{}); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		s.log.Debug(fmt.Sprintf("Vehicle %s has no services, schedule cleared", plate))
		return nil, nil
	}

	tier := s.classifier.Classify(dates)
	lastService := latestDay(dates)
	nextReminder := s.calendar.NextBusinessDay(lastService.AddDate(0, 0, tier.IntervalDays))

	var categoryID *uint
	category, err := s.categoryRepo.FindByName(ctx, tier.Name)
	switch {
	case err == nil:
		categoryID = &category.ID
	case errors.Is(err, appErrors.ErrCategoryNotFound):
		// Tier has no category row; the cached interval still drives the
		// reminder, so the recompute proceeds.
		s.log.Warn(fmt.Sprintf("No category named %s for vehicle %s", tier.Name, plate))
	default:
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	interval := tier.IntervalDays
	sched := entity.VehicleSchedule{
		CategoryID:   categoryID,
		IntervalDays: &interval,
		LastService:  &lastService,
		NextReminder: &nextReminder,
	}
	if err := s.vehicleRepo.UpdateSchedule(ctx, plate, sched); err != nil {
		if errors.Is(err, appErrors.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	return &dto.ScheduleResult{
		Category:     tier.Name,
		IntervalDays: tier.IntervalDays,
		LastService:  lastService,
		NextReminder: nextReminder,
	}, nil
}

// RunScan evaluates every vehicle with a contact and dispatches due reminders.
func (s *scheduleService) RunScan(ctx context.Context, opts dto.ScanOptions) (dto.ScanResult, error) {
	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		return dto.ScanResult{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	var result dto.ScanResult
	for _, vehicle := range vehicles {
		// Cancellation is honored only between vehicles so one vehicle's
		// recompute/dispatch/advance sequence is never split.
		select {
		case <-ctx.Done():
			s.log.Warn(fmt.Sprintf("Scan cancelled after %d sent, %d errors", result.Sent, result.Errors))
			return result, ctx.Err()
		default:
		}

		if !vehicle.HasContact() {
			continue
		}

		refreshed, err := s.Recompute(ctx, vehicle.Plate)
		if err != nil {
			s.log.Error(fmt.Sprintf("Scan: recompute failed for vehicle %s", vehicle.Plate), err)
			result.Errors++
			continue
		}
		if refreshed == nil || refreshed.NextReminder.After(time.Now()) {
			continue
		}

		if opts.Simulate {
			s.log.Info(fmt.Sprintf("[simulated] reminder -> %s %s", vehicle.Client.Phone, vehicle.Plate))
		} else {
			err := s.notifier.Send(ctx, vehicle.Client.Phone, vehicle.Client.Name, refreshed.NextReminder)
			if err != nil {
				// The reminder is not advanced: the vehicle stays due and is
				// retried on the next scan.
				s.log.Error(fmt.Sprintf("Scan: notification failed for vehicle %s", vehicle.Plate), err)
				result.Errors++
				continue
			}
		}
		result.Sent++

		next := s.calendar.NextBusinessDay(time.Now().AddDate(0, 0, refreshed.IntervalDays))
		if err := s.vehicleRepo.UpdateNextReminder(ctx, vehicle.Plate, next); err != nil {
			s.log.Error(fmt.Sprintf("Scan: failed to advance reminder for vehicle %s", vehicle.Plate), err)
		}
	}

	s.log.Info(fmt.Sprintf("Scan complete: sent=%d errors=%d", result.Sent, result.Errors))
	return result, nil
}

// latestDay returns the most recent service date truncated to its calendar
// day. The repository returns dates descending, but the input is normalized
// here rather than trusted.
func latestDay(dates []time.Time) time.Time {
	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return schedule.Day(latest)
}
