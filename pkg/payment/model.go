package payment

import "time"

// Balance is the authoritative per-measurement settlement state, computed
// from the payment log, never from measurements.paid_amount.
type Balance struct {
	MeasurementID uint    `json:"measurement_id"`
	OwnerName     string  `json:"owner_name"`
	Total         float64 `json:"total"`
	PaidAmount    float64 `json:"paid_amount"`
}

// Outstanding is what the owner still owes.
func (b Balance) Outstanding() float64 { return b.Total - b.PaidAmount }

// HistoryEntry is a payment joined with the measurement it settles.
type HistoryEntry struct {
	PaymentID     uint      `json:"payment_id"`
	AmountPaid    float64   `json:"amount_paid"`
	PaidAt        time.Time `json:"paid_at"`
	Note          string    `json:"note"`
	MeasurementID uint      `json:"measurement_id"`
	OwnerName     string    `json:"owner_name"`
	Total         float64   `json:"total"`
	Acr           float64   `json:"acr"`
	PricePerAcre  float64   `json:"price_per_acre"`
	CreatedAt     time.Time `json:"created_at"`
}
