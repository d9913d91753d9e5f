package dto

import (
	"time"

	"taller/internal/domain/entity"
)

// ServiceResponse is the DTO for sending a service event to the caller.
type ServiceResponse struct {
	ID        uint      `json:"id"`
	VehicleID string    `json:"vehicle_id"`
	ClientID  *uint     `json:"client_id"`
	Date      time.Time `json:"date"`
	Odometer  *int      `json:"odometer,omitempty"`
	Summary   *string   `json:"summary,omitempty"`
}

// ToServiceResponse converts an entity.Service to a ServiceResponse DTO.
func ToServiceResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		VehicleID: s.VehicleID,
		ClientID:  s.ClientID,
		Date:      s.Date,
		Odometer:  s.Odometer,
		Summary:   s.Summary,
	}
}

// ToServiceResponseList converts a slice of entity.Service to DTOs.
func ToServiceResponseList(services []*entity.Service) []ServiceResponse {
	list := make([]ServiceResponse, len(services))
	for i, s := range services {
		list[i] = ToServiceResponse(s)
	}
	return list
}

// CreateServiceRequest is the DTO for recording a new service event.
// A zero Date means "now".
type CreateServiceRequest struct {
	Date     *time.Time `json:"date"`
	Odometer *int       `json:"odometer"`
	Summary  *string    `json:"summary"`
}
