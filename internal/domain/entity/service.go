package entity

import "time"

// Service represents a single maintenance event for a vehicle. Services are
// immutable once recorded; the scheduler only ever reads them.
type Service struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	VehicleID string    `gorm:"column:vehicle_id;index"`
	ClientID  *uint     `gorm:"column:client_id;index"`
	Date      time.Time `gorm:"column:date"`
	Odometer  *int      `gorm:"column:odometer"`
	Summary   *string   `gorm:"column:summary;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Service entity.
func (Service) TableName() string {
	return "services"
}
