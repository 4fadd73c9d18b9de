package repository

import "landledger/entities"

type BrokerRepository interface {
	// Insert fails with ErrDuplicateName when first_name already exists.
	Insert(b *entities.Broker) error
	Rename(id uint, newName string) error
	// Delete removes the broker only; measurements keep the name snapshot.
	Delete(id uint) error
	List() ([]entities.Broker, error)
}
