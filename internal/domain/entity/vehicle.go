package entity

import (
	"strings"
	"time"
)

// Vehicle represents a vehicle tracked by the workshop. The plate is the
// primary key; lastService, nextReminder and intervalDays are derived from the
// service history and only ever written by the schedule recomputation.
type Vehicle struct {
	Plate        string     `gorm:"column:plate;primaryKey"`
	ClientID     *uint      `gorm:"column:client_id;index"`
	Brand        *string    `gorm:"column:brand"`
	Model        *string    `gorm:"column:model"`
	Year         *int       `gorm:"column:year"`
	CategoryID   *uint      `gorm:"column:category_id"`
	IntervalDays *int       `gorm:"column:interval_days"`
	LastService  *time.Time `gorm:"column:last_service"`
	NextReminder *time.Time `gorm:"column:next_reminder"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Client   *Client   `gorm:"foreignKey:ClientID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

// TableName specifies the table name for the Vehicle entity.
func (Vehicle) TableName() string {
	return "vehicles"
}

// HasContact reports whether the vehicle has a client with a phone number,
// i.e. whether a reminder can actually be delivered for it.
func (v *Vehicle) HasContact() bool {
	return v.Client != nil && v.Client.Phone != ""
}

// NormalizePlate uppercases a raw plate and strips whitespace and any
// non-alphanumeric characters. Returns "" if nothing usable remains.
func NormalizePlate(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
