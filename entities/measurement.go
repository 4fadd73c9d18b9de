package entities

import "time"

// Measurement is one surveyed plot of land. DriverName/BrokerName are
// snapshots of the names at survey time, not foreign keys: renaming or
// deleting a driver/broker must not rewrite history.
type Measurement struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Acr          float64 `gorm:"not null" json:"acr"`
	PricePerAcre float64 `gorm:"not null" json:"price_per_acre"`
	Total        float64 `gorm:"not null" json:"total"`
	OwnerName    string  `gorm:"not null" json:"owner_name"`
	Mobile       string  `json:"mobile"`
	NIC          string  `gorm:"column:nic" json:"nic"`
	DriverName   string  `gorm:"index" json:"driver_name"`
	BrokerName   string  `gorm:"index" json:"broker_name"`
	// PaidAmount is a cached running total; the payments table is authoritative.
	PaidAmount float64   `gorm:"default:0" json:"paid_amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:MeasurementID;constraint:OnDelete:CASCADE" json:"-"`
}
