package entity

import "time"

// Category represents a usage-intensity category (e.g. ALTA/MEDIA/BAJA) with
// its maintenance interval in days. Categories mirror the configured tier
// table so a vehicle's classification is visible through the CRUD API.
type Category struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;uniqueIndex"`
	EveryDays   int     `gorm:"column:every_days"`
	Description *string `gorm:"column:description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Category entity.
func (Category) TableName() string {
	return "categories"
}
