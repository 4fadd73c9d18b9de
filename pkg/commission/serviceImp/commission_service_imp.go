package serviceImp

import (
	svc "landledger/pkg/commission/service"
	"landledger/pkg/commission/types"
	measRepo "landledger/pkg/measurement/repository"
	profRepo "landledger/pkg/profile/repository"
)

type service struct {
	measurements measRepo.MeasurementRepository
	profiles     profRepo.ProfileRepository
}

func New(m measRepo.MeasurementRepository, p profRepo.ProfileRepository) svc.CommissionService {
	return &service{measurements: m, profiles: p}
}

func (s *service) PerDriver(driverName string) ([]types.Row, error) {
	driverPct, _, err := s.profiles.Commissions()
	if err != nil {
		return nil, err
	}
	ms, err := s.measurements.ListByDriver(driverName)
	if err != nil {
		return nil, err
	}
	rows := make([]types.Row, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, types.Row{
			ID:               m.ID,
			OwnerName:        m.OwnerName,
			Total:            m.Total,
			Acr:              m.Acr,
			DriverName:       m.DriverName,
			CreatedAt:        m.CreatedAt,
			CommissionAmount: m.Total * driverPct / 100,
		})
	}
	return rows, nil
}

func (s *service) PerBroker(brokerName string) ([]types.Row, error) {
	_, brokerPerAcre, err := s.profiles.Commissions()
	if err != nil {
		return nil, err
	}
	ms, err := s.measurements.ListByBroker(brokerName)
	if err != nil {
		return nil, err
	}
	rows := make([]types.Row, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, types.Row{
			ID:               m.ID,
			OwnerName:        m.OwnerName,
			Total:            m.Total,
			Acr:              m.Acr,
			BrokerName:       m.BrokerName,
			CreatedAt:        m.CreatedAt,
			CommissionAmount: m.Acr * brokerPerAcre,
		})
	}
	return rows, nil
}
