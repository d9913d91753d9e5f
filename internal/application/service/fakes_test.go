package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"taller/internal/domain/entity"
	appErrors "taller/internal/pkg/errors"
)

// nopLogger discards everything; tests assert on behavior, not log output.
type nopLogger struct{}

func (nopLogger) Error(msg string, err error) {}
func (nopLogger) Warn(msg string)             {}
func (nopLogger) Info(msg string)             {}
func (nopLogger) Debug(msg string)            {}

type fakeVehicleRepo struct {
	vehicles       map[string]*entity.Vehicle
	findAllErr     error
	scheduleErrFor map[string]error
	scheduleWrites int
}

func newFakeVehicleRepo(vehicles ...*entity.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[string]*entity.Vehicle)}
	for _, v := range vehicles {
		r.vehicles[v.Plate] = v
	}
	return r
}

func (r *fakeVehicleRepo) FindByPlate(ctx context.Context, plate string) (*entity.Vehicle, error) {
	v, ok := r.vehicles[plate]
	if !ok {
		return nil, fmt.Errorf("%w: plate %s", appErrors.ErrVehicleNotFound, plate)
	}
	return v, nil
}

func (r *fakeVehicleRepo) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	plates := make([]string, 0, len(r.vehicles))
	for plate := range r.vehicles {
		plates = append(plates, plate)
	}
	sort.Strings(plates)
	out := make([]*entity.Vehicle, 0, len(plates))
	for _, plate := range plates {
		out = append(out, r.vehicles[plate])
	}
	return out, nil
}

func (r *fakeVehicleRepo) FindByClient(ctx context.Context, clientID uint) ([]*entity.Vehicle, error) {
	all, _ := r.FindAll(ctx)
	var out []*entity.Vehicle
	for _, v := range all {
		if v.ClientID != nil && *v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	r.vehicles[vehicle.Plate] = vehicle
	return nil
}

func (r *fakeVehicleRepo) UpdateSchedule(ctx context.Context, plate string, schedule entity.VehicleSchedule) error {
	if err := r.scheduleErrFor[plate]; err != nil {
		return err
	}
	v, ok := r.vehicles[plate]
	if !ok {
		return fmt.Errorf("%w: plate %s", appErrors.ErrVehicleNotFound, plate)
	}
	v.CategoryID = schedule.CategoryID
	v.IntervalDays = schedule.IntervalDays
	v.LastService = schedule.LastService
	v.NextReminder = schedule.NextReminder
	r.scheduleWrites++
	return nil
}

func (r *fakeVehicleRepo) UpdateNextReminder(ctx context.Context, plate string, next time.Time) error {
	v, ok := r.vehicles[plate]
	if !ok {
		return fmt.Errorf("%w: plate %s", appErrors.ErrVehicleNotFound, plate)
	}
	n := next
	v.NextReminder = &n
	return nil
}

type fakeServiceRepo struct {
	dates       map[string][]time.Time
	services    []*entity.Service
	datesErrFor map[string]error
	nextID      uint
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{dates: make(map[string][]time.Time)}
}

func (r *fakeServiceRepo) FindByVehicle(ctx context.Context, plate string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.VehicleID == plate {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) FindDatesByVehicle(ctx context.Context, plate string) ([]time.Time, error) {
	if err := r.datesErrFor[plate]; err != nil {
		return nil, err
	}
	out := make([]time.Time, len(r.dates[plate]))
	copy(out, r.dates[plate])
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out, nil
}

func (r *fakeServiceRepo) FindByClient(ctx context.Context, clientID uint) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.ClientID != nil && *s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) (uint, error) {
	r.nextID++
	service.ID = r.nextID
	r.services = append(r.services, service)
	r.dates[service.VehicleID] = append(r.dates[service.VehicleID], service.Date)
	return service.ID, nil
}

type fakeCategoryRepo struct {
	byName map[string]*entity.Category
	nextID uint
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	r := &fakeCategoryRepo{byName: make(map[string]*entity.Category)}
	for _, name := range names {
		r.nextID++
		r.byName[name] = &entity.Category{ID: r.nextID, Name: name}
	}
	return r
}

func (r *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", appErrors.ErrCategoryNotFound, name)
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*entity.Category, 0, len(names))
	for _, name := range names {
		out = append(out, r.byName[name])
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.nextID++
	category.ID = r.nextID
	r.byName[category.Name] = category
	return nil
}

func (r *fakeCategoryRepo) Upsert(ctx context.Context, category *entity.Category) error {
	if _, ok := r.byName[category.Name]; ok {
		return nil
	}
	return r.Create(ctx, category)
}

type fakeClientRepo struct {
	byID    map[uint]*entity.Client
	byPhone map[string]*entity.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		byID:    make(map[uint]*entity.Client),
		byPhone: make(map[string]*entity.Client),
	}
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id uint) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", appErrors.ErrClientNotFound, id)
	}
	return c, nil
}

func (r *fakeClientRepo) FindByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	c, ok := r.byPhone[phone]
	if !ok {
		return nil, fmt.Errorf("%w: phone %s", appErrors.ErrClientNotFound, phone)
	}
	return c, nil
}

func (r *fakeClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	r.nextID++
	client.ID = r.nextID
	r.byID[client.ID] = client
	r.byPhone[client.Phone] = client
	return nil
}

func (r *fakeClientRepo) UpdateNotes(ctx context.Context, id uint, notes string) error {
	c, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %d", appErrors.ErrClientNotFound, id)
	}
	n := notes
	c.Notes = &n
	return nil
}

type sentMessage struct {
	phone string
	name  string
	date  time.Time
}

type fakeNotifier struct {
	sent    []sentMessage
	failFor map[string]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{failFor: make(map[string]error)}
}

func (n *fakeNotifier) Send(ctx context.Context, phone, name string, nextDate time.Time) error {
	if err := n.failFor[phone]; err != nil {
		return err
	}
	n.sent = append(n.sent, sentMessage{phone: phone, name: name, date: nextDate})
	return nil
}
