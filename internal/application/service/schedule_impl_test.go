package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/application/dto"
	"taller/internal/domain/entity"
	"taller/internal/domain/schedule"
	appErrors "taller/internal/pkg/errors"
)

var testTierTable = schedule.TierTable{
	{Name: "BAJA", ThresholdDays: 90, IntervalDays: 180},
	{Name: "MEDIA", ThresholdDays: 30, IntervalDays: 90},
	{Name: "ALTA", ThresholdDays: 0, IntervalDays: 30},
}

func dayUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func buildScheduleService(vr *fakeVehicleRepo, sr *fakeServiceRepo, cr *fakeCategoryRepo, n *fakeNotifier) (ScheduleService, *schedule.Calendar) {
	cal := schedule.NewCalendar(nil)
	svc := NewScheduleService(vr, sr, cr, schedule.NewClassifier(testTierTable), cal, n, nopLogger{})
	return svc, cal
}

func vehicleWithContact(plate, name, phone string) *entity.Vehicle {
	return &entity.Vehicle{
		Plate:  plate,
		Client: &entity.Client{ID: 1, Name: name, Phone: phone},
	}
}

func TestRecompute_VehicleNotFound(t *testing.T) {
	svc, _ := buildScheduleService(newFakeVehicleRepo(), newFakeServiceRepo(), newFakeCategoryRepo(), newFakeNotifier())

	_, err := svc.Recompute(context.Background(), "ZZZ999")
	assert.ErrorIs(t, err, appErrors.ErrVehicleNotFound)
}

func TestRecompute_NoServicesClearsSchedule(t *testing.T) {
	stale := dayUTC(2024, 1, 1)
	interval := 90
	vehicle := vehicleWithContact("ABC123", "Ana", "5491100000001")
	vehicle.IntervalDays = &interval
	vehicle.LastService = &stale
	vehicle.NextReminder = &stale

	vr := newFakeVehicleRepo(vehicle)
	svc, _ := buildScheduleService(vr, newFakeServiceRepo(), newFakeCategoryRepo(), newFakeNotifier())

	result, err := svc.Recompute(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Nil(t, vehicle.IntervalDays)
	assert.Nil(t, vehicle.LastService)
	assert.Nil(t, vehicle.NextReminder)
	assert.Equal(t, 1, vr.scheduleWrites)
}

func TestRecompute_SingleServiceUsesDefaultTier(t *testing.T) {
	vehicle := vehicleWithContact("ABC123", "Ana", "5491100000001")
	vr := newFakeVehicleRepo(vehicle)
	sr := newFakeServiceRepo()
	sr.dates["ABC123"] = []time.Time{dayUTC(2024, 3, 4)}

	svc, cal := buildScheduleService(vr, sr, newFakeCategoryRepo("BAJA"), newFakeNotifier())

	result, err := svc.Recompute(context.Background(), "ABC123")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "BAJA", result.Category)
	assert.Equal(t, 180, result.IntervalDays)
	assert.Equal(t, dayUTC(2024, 3, 4), result.LastService)
	assert.Equal(t, cal.NextBusinessDay(dayUTC(2024, 3, 4).AddDate(0, 0, 180)), result.NextReminder)
}

func TestRecompute_FrequentUsePersistsSchedule(t *testing.T) {
	vehicle := vehicleWithContact("ABC123", "Ana", "5491100000001")
	vr := newFakeVehicleRepo(vehicle)
	sr := newFakeServiceRepo()
	// Two services 25 days apart: intense use, 30-day interval.
	sr.dates["ABC123"] = []time.Time{dayUTC(2024, 4, 1), dayUTC(2024, 4, 26)}
	cr := newFakeCategoryRepo("BAJA", "MEDIA", "ALTA")

	svc, cal := buildScheduleService(vr, sr, cr, newFakeNotifier())

	result, err := svc.Recompute(context.Background(), "ABC123")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ALTA", result.Category)
	assert.Equal(t, 30, result.IntervalDays)
	assert.Equal(t, dayUTC(2024, 4, 26), result.LastService)

	wantNext := cal.NextBusinessDay(dayUTC(2024, 5, 26))
	assert.Equal(t, wantNext, result.NextReminder)

	alta, _ := cr.FindByName(context.Background(), "ALTA")
	require.NotNil(t, vehicle.CategoryID)
	assert.Equal(t, alta.ID, *vehicle.CategoryID)
	require.NotNil(t, vehicle.IntervalDays)
	assert.Equal(t, 30, *vehicle.IntervalDays)
	require.NotNil(t, vehicle.NextReminder)
	assert.Equal(t, wantNext, *vehicle.NextReminder)
}

func TestRecompute_Idempotent(t *testing.T) {
	vehicle := vehicleWithContact("ABC123", "Ana", "5491100000001")
	vr := newFakeVehicleRepo(vehicle)
	sr := newFakeServiceRepo()
	sr.dates["ABC123"] = []time.Time{dayUTC(2024, 4, 1), dayUTC(2024, 4, 26)}

	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo("ALTA"), newFakeNotifier())

	first, err := svc.Recompute(context.Background(), "ABC123")
	require.NoError(t, err)
	second, err := svc.Recompute(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, vr.scheduleWrites)
}

func TestRecompute_MissingCategoryStillSchedules(t *testing.T) {
	vehicle := vehicleWithContact("ABC123", "Ana", "5491100000001")
	vr := newFakeVehicleRepo(vehicle)
	sr := newFakeServiceRepo()
	sr.dates["ABC123"] = []time.Time{dayUTC(2024, 4, 1), dayUTC(2024, 4, 26)}

	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo(), newFakeNotifier())

	result, err := svc.Recompute(context.Background(), "ABC123")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ALTA", result.Category)
	assert.Nil(t, vehicle.CategoryID)
	require.NotNil(t, vehicle.IntervalDays)
	assert.Equal(t, 30, *vehicle.IntervalDays)
}

// dueVehicleDates returns a service history that classifies as intense use
// with a next reminder well in the past, so the vehicle is due on any scan.
func dueVehicleDates() []time.Time {
	now := time.Now().UTC()
	return []time.Time{now.AddDate(0, 0, -200), now.AddDate(0, 0, -175)}
}

func TestRunScan_SimulateCountsWithoutDispatching(t *testing.T) {
	due1 := vehicleWithContact("AAA111", "Ana", "5491100000001")
	due2 := vehicleWithContact("BBB222", "Bruno", "5491100000002")
	noContact := &entity.Vehicle{Plate: "CCC333"}
	notDue := vehicleWithContact("DDD444", "Carla", "5491100000004")

	vr := newFakeVehicleRepo(due1, due2, noContact, notDue)
	sr := newFakeServiceRepo()
	sr.dates["AAA111"] = dueVehicleDates()
	sr.dates["BBB222"] = dueVehicleDates()
	sr.dates["DDD444"] = []time.Time{time.Now().UTC().AddDate(0, 0, -1)}

	notifier := newFakeNotifier()
	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo("BAJA", "MEDIA", "ALTA"), notifier)

	result, err := svc.RunScan(context.Background(), dto.ScanOptions{Simulate: true})
	require.NoError(t, err)
	assert.Equal(t, dto.ScanResult{Sent: 2, Errors: 0}, result)
	assert.Empty(t, notifier.sent, "simulate mode must never touch the transport")

	// Counted reminders are advanced past now even in simulate mode.
	require.NotNil(t, due1.NextReminder)
	assert.True(t, due1.NextReminder.After(time.Now()))
	require.NotNil(t, due2.NextReminder)
	assert.True(t, due2.NextReminder.After(time.Now()))
}

func TestRunScan_DispatchesDueReminders(t *testing.T) {
	due := vehicleWithContact("AAA111", "Ana", "5491100000001")
	vr := newFakeVehicleRepo(due)
	sr := newFakeServiceRepo()
	sr.dates["AAA111"] = dueVehicleDates()

	notifier := newFakeNotifier()
	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo("ALTA"), notifier)

	result, err := svc.RunScan(context.Background(), dto.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, dto.ScanResult{Sent: 1, Errors: 0}, result)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "5491100000001", notifier.sent[0].phone)
	assert.Equal(t, "Ana", notifier.sent[0].name)
}

func TestRunScan_TransportFailureDoesNotAdvance(t *testing.T) {
	failing := vehicleWithContact("AAA111", "Ana", "5491100000001")
	healthy := vehicleWithContact("BBB222", "Bruno", "5491100000002")

	vr := newFakeVehicleRepo(failing, healthy)
	sr := newFakeServiceRepo()
	sr.dates["AAA111"] = dueVehicleDates()
	sr.dates["BBB222"] = dueVehicleDates()

	notifier := newFakeNotifier()
	notifier.failFor["5491100000001"] = fmt.Errorf("%w: delivery rejected", appErrors.ErrNotification)

	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo("ALTA"), notifier)

	result, err := svc.RunScan(context.Background(), dto.ScanOptions{})
	require.NoError(t, err, "per-vehicle failures must not abort the batch")
	assert.Equal(t, dto.ScanResult{Sent: 1, Errors: 1}, result)

	// The failed vehicle stays due for the next scan.
	require.NotNil(t, failing.NextReminder)
	assert.True(t, failing.NextReminder.Before(time.Now()))
	require.NotNil(t, healthy.NextReminder)
	assert.True(t, healthy.NextReminder.After(time.Now()))
}

func TestRunScan_RecomputeFailureIsolated(t *testing.T) {
	broken := vehicleWithContact("AAA111", "Ana", "5491100000001")
	healthy := vehicleWithContact("BBB222", "Bruno", "5491100000002")

	vr := newFakeVehicleRepo(broken, healthy)
	sr := newFakeServiceRepo()
	sr.dates["BBB222"] = dueVehicleDates()
	sr.datesErrFor = map[string]error{"AAA111": errors.New("disk gone")}

	notifier := newFakeNotifier()
	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo("ALTA"), notifier)

	result, err := svc.RunScan(context.Background(), dto.ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, dto.ScanResult{Sent: 1, Errors: 1}, result)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "5491100000002", notifier.sent[0].phone)
}

func TestRunScan_CancelledContext(t *testing.T) {
	due := vehicleWithContact("AAA111", "Ana", "5491100000001")
	vr := newFakeVehicleRepo(due)
	sr := newFakeServiceRepo()
	sr.dates["AAA111"] = dueVehicleDates()

	notifier := newFakeNotifier()
	svc, _ := buildScheduleService(vr, sr, newFakeCategoryRepo("ALTA"), notifier)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.RunScan(ctx, dto.ScanOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, dto.ScanResult{}, result)
	assert.Empty(t, notifier.sent)
}
