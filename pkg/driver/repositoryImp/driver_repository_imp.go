package repositoryImp

import (
	"gorm.io/gorm"

	"landledger/entities"
	"landledger/pkg/driver/repository"
	"landledger/pkg/ledgererr"
)

type driverRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DriverRepository { return &driverRepo{db} }

func (r *driverRepo) Insert(d *entities.Driver) error {
	return ledgererr.FromGorm(r.db.Create(d).Error)
}

func (r *driverRepo) Rename(id uint, newName string) error {
	res := r.db.Model(&entities.Driver{}).Where("id = ?", id).Update("first_name", newName)
	if res.Error != nil {
		return ledgererr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledgererr.ErrNotFound
	}
	return nil
}

func (r *driverRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Driver{}, id)
	if res.Error != nil {
		return ledgererr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledgererr.ErrNotFound
	}
	return nil
}

func (r *driverRepo) List() ([]entities.Driver, error) {
	var out []entities.Driver
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}

func (r *driverRepo) AddDetail(d *entities.DriverDetail) error {
	return ledgererr.FromGorm(r.db.Create(d).Error)
}

func (r *driverRepo) ListDetails() ([]entities.DriverDetail, error) {
	var out []entities.DriverDetail
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}
