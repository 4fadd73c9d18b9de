package repositoryImp

import (
	"gorm.io/gorm"

	"landledger/entities"
	"landledger/pkg/broker/repository"
	"landledger/pkg/ledgererr"
)

type brokerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BrokerRepository { return &brokerRepo{db} }

func (r *brokerRepo) Insert(b *entities.Broker) error {
	return ledgererr.FromGorm(r.db.Create(b).Error)
}

func (r *brokerRepo) Rename(id uint, newName string) error {
	res := r.db.Model(&entities.Broker{}).Where("id = ?", id).Update("first_name", newName)
	if res.Error != nil {
		return ledgererr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledgererr.ErrNotFound
	}
	return nil
}

func (r *brokerRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Broker{}, id)
	if res.Error != nil {
		return ledgererr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledgererr.ErrNotFound
	}
	return nil
}

func (r *brokerRepo) List() ([]entities.Broker, error) {
	var out []entities.Broker
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}
