package entities

import "time"

// DefaultPricePerAcre is used when no profile has been saved yet.
const DefaultPricePerAcre = 19000

// Profile holds the contractor's settings. The table allows many rows but the
// application treats it as a singleton: callers always work with the first row.
// DriverCommission is a percentage of the measurement total; BrokerCommission
// is a flat amount per acre. The asymmetry is intentional.
type Profile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FarmName         string    `gorm:"not null" json:"farm_name"`
	Mobile           string    `json:"mobile"`
	Address          string    `json:"address"`
	PricePerAcre     float64   `gorm:"not null" json:"price_per_acre"`
	DriverCommission float64   `json:"driver_commission"`
	BrokerCommission float64   `gorm:"column:broker_commission_or_amount" json:"broker_commission_or_amount"`
	SelectedBroker   string    `gorm:"column:selected_broker_name" json:"selected_broker_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profile" }
