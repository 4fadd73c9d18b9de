package service

import (
	"time"

	"landledger/entities"
)

// NewMeasurement carries the caller's input for a create or full update.
// Total is stored exactly as given; the service only checks it agrees with
// Acr × PricePerAcre at the boundary.
type NewMeasurement struct {
	Acr          float64
	PricePerAcre float64
	Total        float64
	OwnerName    string
	Mobile       string
	NIC          string
	DriverName   string
	BrokerName   string
	CreatedAt    *time.Time // optional; survey date may be backdated
}

type MeasurementService interface {
	Create(in NewMeasurement) (*entities.Measurement, error)
	Update(id uint, in NewMeasurement) (*entities.Measurement, error)
	Delete(id uint) error
	List() ([]entities.Measurement, error)
	Get(id uint) (*entities.Measurement, error)
	Totals() (acr float64, amount float64, err error)
	DriverNames() ([]string, error)
	BrokerNames() ([]string, error)
}
