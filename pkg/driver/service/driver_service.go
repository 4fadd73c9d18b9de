package service

import "landledger/entities"

type DriverService interface {
	Add(firstName string) (*entities.Driver, error)
	Rename(id uint, newName string) error
	Delete(id uint) error
	List() ([]entities.Driver, error)

	AddDetail(d entities.DriverDetail) (*entities.DriverDetail, error)
	ListDetails() ([]entities.DriverDetail, error)
}
