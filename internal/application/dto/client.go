package dto

import (
	"time"

	"taller/internal/domain/entity"
)

// ClientResponse is the DTO for sending client information to the caller.
type ClientResponse struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}

// ClientDetailResponse adds the client's vehicles and service history.
type ClientDetailResponse struct {
	ClientResponse
	Vehicles []VehicleResponse `json:"vehicles"`
	Services []ServiceResponse `json:"services"`
}

// ToClientResponse converts an entity.Client to a ClientResponse DTO.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Phone:    c.Phone,
		Birthday: c.Birthday,
		Notes:    c.Notes,
	}
}

// ToClientResponseList converts a slice of entity.Client to DTOs.
func ToClientResponseList(clients []*entity.Client) []ClientResponse {
	list := make([]ClientResponse, len(clients))
	for i, c := range clients {
		list[i] = ToClientResponse(c)
	}
	return list
}

// CreateClientRequest is the DTO for creating a new client.
type CreateClientRequest struct {
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Birthday *time.Time `json:"birthday"`
	Notes    *string    `json:"notes"`
}
