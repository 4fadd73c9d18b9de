package serviceImp

import (
	"fmt"
	"strings"

	"landledger/entities"
	"landledger/pkg/broker/repository"
	svc "landledger/pkg/broker/service"
	"landledger/pkg/ledgererr"
)

type service struct{ repo repository.BrokerRepository }

func New(r repository.BrokerRepository) svc.BrokerService { return &service{repo: r} }

func (s *service) nameTaken(name string, excludeID uint) (bool, error) {
	brokers, err := s.repo.List()
	if err != nil {
		return false, err
	}
	for _, b := range brokers {
		if b.ID != excludeID && strings.EqualFold(b.FirstName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) Add(firstName string) (*entities.Broker, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: first_name is required", ledgererr.ErrValidation)
	}
	taken, err := s.nameTaken(firstName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: broker %q", ledgererr.ErrDuplicateName, firstName)
	}
	b := &entities.Broker{FirstName: firstName}
	if err := s.repo.Insert(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Rename(id uint, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: first_name is required", ledgererr.ErrValidation)
	}
	taken, err := s.nameTaken(newName, id)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: broker %q", ledgererr.ErrDuplicateName, newName)
	}
	return s.repo.Rename(id, newName)
}

func (s *service) Delete(id uint) error { return s.repo.Delete(id) }

func (s *service) List() ([]entities.Broker, error) { return s.repo.List() }
