package serviceImp

import (
	"fmt"
	"strings"

	"landledger/entities"
	"landledger/pkg/driver/repository"
	svc "landledger/pkg/driver/service"
	"landledger/pkg/ledgererr"
)

type service struct{ repo repository.DriverRepository }

func New(r repository.DriverRepository) svc.DriverService { return &service{repo: r} }

// The UNIQUE constraint is case-sensitive; the app has always also rejected
// "kamal" when "Kamal" exists, so the service checks case-insensitively first.
func (s *service) nameTaken(name string, excludeID uint) (bool, error) {
	drivers, err := s.repo.List()
	if err != nil {
		return false, err
	}
	for _, d := range drivers {
		if d.ID != excludeID && strings.EqualFold(d.FirstName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) Add(firstName string) (*entities.Driver, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: first_name is required", ledgererr.ErrValidation)
	}
	taken, err := s.nameTaken(firstName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: driver %q", ledgererr.ErrDuplicateName, firstName)
	}
	d := &entities.Driver{FirstName: firstName}
	if err := s.repo.Insert(d); err != nil {
		return nil, err
	}
	return d, nil
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
		return fmt.Errorf("%w: driver %q", ledgererr.ErrDuplicateName, newName)
	}
	return s.repo.Rename(id, newName)
}

func (s *service) Delete(id uint) error { return s.repo.Delete(id) }

func (s *service) List() ([]entities.Driver, error) { return s.repo.List() }

func (s *service) AddDetail(d entities.DriverDetail) (*entities.DriverDetail, error) {
	if strings.TrimSpace(d.DriverName) == "" {
		return nil, fmt.Errorf("%w: driver_name is required", ledgererr.ErrValidation)
	}
	if err := s.repo.AddDetail(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *service) ListDetails() ([]entities.DriverDetail, error) { return s.repo.ListDetails() }
