package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"taller/internal/application/dto"
	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

type importService struct {
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
	serviceRepo repository.ServiceRepository
	scheduleSvc ScheduleService
	log         logger.Logger
}

// NewImportService creates a new instance of ImportService implementation.
func NewImportService(
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.ServiceRepository,
	scheduleSvc ScheduleService,
	log logger.Logger,
) ImportService {
	return &importService{
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		serviceRepo: serviceRepo,
		scheduleSvc: scheduleSvc,
		log:         log,
	}
}

// columns holds the resolved header index of each known field; -1 when the
// export lacks that column.
type columns struct {
	timestamp, date, name, plate, vehicle, phone    int
	odometer, oil, oilFilter, airFilter, fuelFilter int
	cabinFilter, other, price, email                int
}

func resolveColumns(headers []string) columns {
	return columns{
		timestamp:   findColumn(headers, "marca temporal"),
		date:        findColumn(headers, "fecha"),
		name:        findColumn(headers, "nombre y apellido", "nombre"),
		plate:       findColumn(headers, "patente"),
		vehicle:     findColumn(headers, "marca, modelo", "marca modelo"),
		phone:       findColumn(headers, "whatsapp", "telefono", "tel"),
		odometer:    findColumn(headers, "cantidad de kilometros", "km", "kilometros"),
		oil:         findColumn(headers, "aceite"),
		oilFilter:   findColumn(headers, "filtro de aceite"),
		airFilter:   findColumn(headers, "filtro de aire"),
		fuelFilter:  findColumn(headers, "filtro de combustible"),
		cabinFilter: findColumn(headers, "filtro de habitaculo"),
		other:       findColumn(headers, "otros servicios", "otros"),
		price:       findColumn(headers, "precio final del cambio", "precio"),
		email:       findColumn(headers, "@", "email", "correo"),
	}
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ImportCSV ingests a workshop intake CSV.
func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	firstLine, _, _ := strings.Cut(string(raw), "\n")
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = detectDelimiter(firstLine)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
	}

	result := &dto.ImportResult{}
	if len(records) < 2 {
		return result, nil
	}

	cols := resolveColumns(records[0])

	for _, row := range records[1:] {
		phone := digitsOnly(field(row, cols.phone))
		if phone == "" {
			result.SkippedNoPhone++
			continue
		}

		plate := entity.NormalizePlate(field(row, cols.plate))
		if plate == "" {
			result.SkippedNoPlate++
			continue
		}

		name := field(row, cols.name)
		if name == "" {
			name = "Sin nombre"
		}

		serviceDate := time.Now()
		if d := parseDateLoose(field(row, cols.date)); d != nil {
			serviceDate = *d
		} else if d := parseDateLoose(field(row, cols.timestamp)); d != nil {
			serviceDate = *d
		}

		client, err := s.upsertClient(ctx, name, phone, field(row, cols.email), result)
		if err != nil {
			return nil, err
		}
		if err := s.upsertVehicle(ctx, plate, client.ID, field(row, cols.vehicle), result); err != nil {
			return nil, err
		}

		svc := &entity.Service{
			VehicleID: plate,
			ClientID:  &client.ID,
			Date:      serviceDate,
			Odometer:  parseIntLoose(field(row, cols.odometer)),
			Summary:   buildSummary(row, cols),
		}
		if _, err := s.serviceRepo.Create(ctx, svc); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
		}
		result.CreatedServices++

		if _, err := s.scheduleSvc.Recompute(ctx, plate); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
		}
	}

	s.log.Info(fmt.Sprintf(
		"Import complete: clients=%d vehicles=%d services=%d skipped(no phone)=%d skipped(no plate)=%d",
		result.CreatedClients, result.CreatedVehicles, result.CreatedServices,
		result.SkippedNoPhone, result.SkippedNoPlate,
	))
	return result, nil
}

func (s *importService) upsertClient(ctx context.Context, name, phone, email string, result *dto.ImportResult) (*entity.Client, error) {
	client, err := s.clientRepo.FindByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, appErrors.ErrClientNotFound) {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
		}
		client = &entity.Client{Name: name, Phone: phone}
		if email != "" {
			client.Notes = &email
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
		}
		result.CreatedClients++
		return client, nil
	}

	if (client.Notes == nil || *client.Notes == "") && email != "" {
		if err := s.clientRepo.UpdateNotes(ctx, client.ID, email); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrImport, err)
		}
	}
	return client, nil
}

func (s *importService) upsertVehicle(ctx context.Context, plate string, clientID uint, description string, result *dto.ImportResult) error {
	_, err := s.vehicleRepo.FindByPlate(ctx, plate)
	if err == nil {
		return nil
	}
	if !errors.Is(err, appErrors.ErrVehicleNotFound) {
		return fmt.Errorf("%w: %v", appErrors.ErrImport, err)
	}

	brand, model, year := splitVehicleDescription(description)
	vehicle := &entity.Vehicle{
		Plate:    plate,
		ClientID: &clientID,
		Brand:    brand,
		Model:    model,
		Year:     year,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrImport, err)
	}
	result.CreatedVehicles++
	return nil
}

func buildSummary(row []string, cols columns) *string {
	var parts []string
	add := func(label string, idx int) {
		if v := field(row, idx); v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("Aceite", cols.oil)
	add("Filtro aceite", cols.oilFilter)
	add("Filtro aire", cols.airFilter)
	add("Filtro combustible", cols.fuelFilter)
	add("Filtro habitáculo", cols.cabinFilter)
	add("Otros", cols.other)
	if price := parseMoney(field(row, cols.price)); price != nil {
		parts = append(parts, fmt.Sprintf("Precio: %g", *price))
	}
	if len(parts) == 0 {
		return nil
	}
	summary := strings.Join(parts, " | ")
	return &summary
}
