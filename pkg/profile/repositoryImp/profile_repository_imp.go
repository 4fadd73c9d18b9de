package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"landledger/entities"
	"landledger/pkg/ledgererr"
	"landledger/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) First() (*entities.Profile, error) {
	var out entities.Profile
	if err := r.db.Order("id ASC").First(&out).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return &out, nil
}

func (r *profileRepo) Insert(p *entities.Profile) error {
	return ledgererr.FromGorm(r.db.Create(p).Error)
}

func (r *profileRepo) Update(id uint, p *entities.Profile) error {
	res := r.db.Model(&entities.Profile{}).Where("id = ?", id).Updates(map[string]any{
		"farm_name":                   p.FarmName,
		"mobile":                      p.Mobile,
		"address":                     p.Address,
		"price_per_acre":              p.PricePerAcre,
		"driver_commission":           p.DriverCommission,
		"broker_commission_or_amount": p.BrokerCommission,
		"selected_broker_name":        p.SelectedBroker,
	})
	if res.Error != nil {
		return ledgererr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledgererr.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Commissions() (float64, float64, error) {
	p, err := r.First()
	if err != nil {
		if errors.Is(err, ledgererr.ErrNotFound) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return p.DriverCommission, p.BrokerCommission, nil
}
