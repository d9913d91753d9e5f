package dto

// ImportResult summarizes a CSV import run.
type ImportResult struct {
	CreatedClients  int `json:"created_clients"`
	CreatedVehicles int `json:"created_vehicles"`
	CreatedServices int `json:"created_services"`
	SkippedNoPhone  int `json:"skipped_no_phone"`
	SkippedNoPlate  int `json:"skipped_no_plate"`
}
