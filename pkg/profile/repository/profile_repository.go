package repository

import "landledger/entities"

type ProfileRepository interface {
	// First returns the singleton settings row, ErrNotFound when none saved yet.
	First() (*entities.Profile, error)
	Insert(p *entities.Profile) error
	Update(id uint, p *entities.Profile) error

	// Commissions reads the two rates off the first profile; both zero when
	// no profile exists.
	Commissions() (driverPct, brokerPerAcre float64, err error)
}
