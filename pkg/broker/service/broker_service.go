package service

import "landledger/entities"

type BrokerService interface {
	Add(firstName string) (*entities.Broker, error)
	Rename(id uint, newName string) error
	Delete(id uint) error
	List() ([]entities.Broker, error)
}
