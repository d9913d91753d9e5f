package dto

import (
	"time"

	"taller/internal/domain/entity"
)

// VehicleResponse is the DTO for sending vehicle information to the client.
type VehicleResponse struct {
	Plate        string            `json:"plate"`
	ClientID     *uint             `json:"client_id"`
	Brand        *string           `json:"brand"`
	Model        *string           `json:"model"`
	Year         *int              `json:"year"`
	IntervalDays *int              `json:"interval_days"`
	LastService  *time.Time        `json:"last_service"`
	NextReminder *time.Time        `json:"next_reminder"`
	Client       *ClientResponse   `json:"client,omitempty"`
	Category     *CategoryResponse `json:"category,omitempty"`
}

// VehicleDetailResponse adds the vehicle's full service history.
type VehicleDetailResponse struct {
	VehicleResponse
	Services []ServiceResponse `json:"services"`
}

// ToVehicleResponse converts an entity.Vehicle to a VehicleResponse DTO.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		Plate:        v.Plate,
		ClientID:     v.ClientID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		IntervalDays: v.IntervalDays,
		LastService:  v.LastService,
		NextReminder: v.NextReminder,
	}
	if v.Client != nil {
		c := ToClientResponse(v.Client)
		resp.Client = &c
	}
	if v.Category != nil {
		c := ToCategoryResponse(v.Category)
		resp.Category = &c
	}
	return resp
}

// ToVehicleResponseList converts a slice of entity.Vehicle to DTOs.
func ToVehicleResponseList(vehicles []*entity.Vehicle) []VehicleResponse {
	list := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		list[i] = ToVehicleResponse(v)
	}
	return list
}

// CreateVehicleRequest is the DTO for registering a new vehicle.
type CreateVehicleRequest struct {
	Plate      string  `json:"plate"`
	ClientID   *uint   `json:"client_id"`
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	CategoryID *uint   `json:"category_id"`
}
