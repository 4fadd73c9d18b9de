package entities

import "time"

type Driver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null;unique" json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Driver) TableName() string { return "driver" }

// DriverDetail is a free-standing contact record keyed by the driver's name
// string, not linked by foreign key to Driver.
type DriverDetail struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DriverName    string    `gorm:"not null;index" json:"driver_name"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
