package repository

import "landledger/entities"

type MeasurementRepository interface {
	Create(m *entities.Measurement) error
	Update(m *entities.Measurement) error
	Delete(id uint) error
	List() ([]entities.Measurement, error)
	FindByID(id uint) (*entities.Measurement, error)

	// ListByDriver/ListByBroker filter on the denormalized name snapshot;
	// an empty name returns every measurement.
	ListByDriver(driverName string) ([]entities.Measurement, error)
	ListByBroker(brokerName string) ([]entities.Measurement, error)

	TotalAcr() (float64, error)
	TotalAmount() (float64, error)

	// Distinct non-empty names ever used on a measurement. Includes names of
	// drivers/brokers deleted since.
	DriverNames() ([]string, error)
	BrokerNames() ([]string, error)
}
