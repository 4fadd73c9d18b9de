package serviceImp

import (
	"errors"
	"fmt"

	"landledger/entities"
	"landledger/pkg/ledgererr"
	"landledger/pkg/profile/repository"
	svc "landledger/pkg/profile/service"
)

type service struct{ repo repository.ProfileRepository }

func New(r repository.ProfileRepository) svc.ProfileService { return &service{repo: r} }

func (s *service) Get() (*entities.Profile, error) { return s.repo.First() }

func (s *service) Upsert(p entities.Profile) (*entities.Profile, error) {
	if p.FarmName == "" {
		return nil, fmt.Errorf("%w: farm_name is required", ledgererr.ErrValidation)
	}
	if p.PricePerAcre < 0 {
		return nil, fmt.Errorf("%w: price_per_acre must not be negative", ledgererr.ErrValidation)
	}

	cur, err := s.repo.First()
	switch {
	case errors.Is(err, ledgererr.ErrNotFound):
		if err := s.repo.Insert(&p); err != nil {
			return nil, err
		}
		return &p, nil
	case err != nil:
		return nil, err
	default:
		if err := s.repo.Update(cur.ID, &p); err != nil {
			return nil, err
		}
		return s.repo.First()
	}
}

func (s *service) Commissions() (float64, float64, error) { return s.repo.Commissions() }

func (s *service) CurrentPricePerAcre() (float64, error) {
	p, err := s.repo.First()
	if err != nil {
		if errors.Is(err, ledgererr.ErrNotFound) {
			return entities.DefaultPricePerAcre, nil
		}
		return entities.DefaultPricePerAcre, err
	}
	return p.PricePerAcre, nil
}
