package entity

import "time"

// Client represents a workshop customer. The phone number doubles as the
// WhatsApp destination for reminders and is unique across clients.
type Client struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"column:name"`
	Phone     string     `gorm:"column:phone;uniqueIndex"`
	Birthday  *time.Time `gorm:"column:birthday"`
	Notes     *string    `gorm:"column:notes"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Client entity.
func (Client) TableName() string {
	return "clients"
}
