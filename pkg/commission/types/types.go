package types

import "time"

// Row is one measurement with its derived commission. The amount is computed
// from the profile's CURRENT rate every time it is read: editing the rate
// deliberately changes historical reports as well.
type Row struct {
	ID               uint      `json:"id"`
	OwnerName        string    `json:"owner_name"`
	Total            float64   `json:"total"`
	Acr              float64   `json:"acr"`
	DriverName       string    `json:"driver_name,omitempty"`
	BrokerName       string    `json:"broker_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	CommissionAmount float64   `json:"commission_amount"`
}
