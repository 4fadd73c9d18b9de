package serviceImp

import (
	"fmt"
	"math"

	"landledger/entities"
	"landledger/pkg/ledgererr"
	"landledger/pkg/measurement/repository"
	svc "landledger/pkg/measurement/service"
)

const totalTolerance = 1e-6

type service struct{ repo repository.MeasurementRepository }

func New(r repository.MeasurementRepository) svc.MeasurementService { return &service{repo: r} }

func validate(in svc.NewMeasurement) error {
	if in.Acr <= 0 {
		return fmt.Errorf("%w: acr must be positive", ledgererr.ErrValidation)
	}
	if in.PricePerAcre < 0 {
		return fmt.Errorf("%w: price_per_acre must not be negative", ledgererr.ErrValidation)
	}
	if in.OwnerName == "" {
		return fmt.Errorf("%w: owner_name is required", ledgererr.ErrValidation)
	}
	if math.Abs(in.Total-in.Acr*in.PricePerAcre) > totalTolerance {
		return fmt.Errorf("%w: total %.2f does not match acr*price %.2f",
			ledgererr.ErrValidation, in.Total, in.Acr*in.PricePerAcre)
	}
	return nil
}

func (s *service) Create(in svc.NewMeasurement) (*entities.Measurement, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	m := &entities.Measurement{
		Acr:          in.Acr,
		PricePerAcre: in.PricePerAcre,
		Total:        in.Total,
		OwnerName:    in.OwnerName,
		Mobile:       in.Mobile,
		NIC:          in.NIC,
		DriverName:   in.DriverName,
		BrokerName:   in.BrokerName,
	}
	if in.CreatedAt != nil {
		m.CreatedAt = *in.CreatedAt
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(id uint, in svc.NewMeasurement) (*entities.Measurement, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	m := &entities.Measurement{
		ID:           id,
		Acr:          in.Acr,
		PricePerAcre: in.PricePerAcre,
		Total:        in.Total,
		OwnerName:    in.OwnerName,
		Mobile:       in.Mobile,
		NIC:          in.NIC,
		DriverName:   in.DriverName,
		BrokerName:   in.BrokerName,
	}
	if err := s.repo.Update(m); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *service) Delete(id uint) error { return s.repo.Delete(id) }

func (s *service) List() ([]entities.Measurement, error) { return s.repo.List() }

func (s *service) Get(id uint) (*entities.Measurement, error) { return s.repo.FindByID(id) }

func (s *service) Totals() (float64, float64, error) {
	acr, err := s.repo.TotalAcr()
	if err != nil {
		return 0, 0, err
	}
	amount, err := s.repo.TotalAmount()
	if err != nil {
		return 0, 0, err
	}
	return acr, amount, nil
}

func (s *service) DriverNames() ([]string, error) { return s.repo.DriverNames() }
func (s *service) BrokerNames() ([]string, error) { return s.repo.BrokerNames() }
