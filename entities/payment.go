package entities

import "time"

// Payment is append-only: there is no update or delete path for a payment,
// rows only disappear when their measurement is deleted (cascade).
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MeasurementID uint      `gorm:"not null;index" json:"measurement_id"`
	AmountPaid    float64   `gorm:"not null" json:"amount_paid"`
	PaidAt        time.Time `gorm:"autoCreateTime" json:"paid_at"`
	Note          string    `json:"note"`
}
