package service

import "landledger/entities"

type ProfileService interface {
	Get() (*entities.Profile, error)

	// Upsert writes the singleton settings record: updates the first row when
	// one exists, inserts otherwise.
	Upsert(p entities.Profile) (*entities.Profile, error)

	Commissions() (driverPct, brokerPerAcre float64, err error)

	// CurrentPricePerAcre falls back to entities.DefaultPricePerAcre when no
	// profile has been saved.
	CurrentPricePerAcre() (float64, error)
}
