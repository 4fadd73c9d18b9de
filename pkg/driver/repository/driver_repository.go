package repository

import "landledger/entities"

type DriverRepository interface {
	// Insert fails with ErrDuplicateName when first_name already exists
	// (exact, case-sensitive match against the UNIQUE constraint).
	Insert(d *entities.Driver) error
	Rename(id uint, newName string) error
	Delete(id uint) error
	List() ([]entities.Driver, error)

	AddDetail(d *entities.DriverDetail) error
	ListDetails() ([]entities.DriverDetail, error)
}
