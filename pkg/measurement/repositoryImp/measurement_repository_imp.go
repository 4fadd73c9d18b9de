package repositoryImp

import (
	"gorm.io/gorm"

	"landledger/entities"
	"landledger/pkg/ledgererr"
	"landledger/pkg/measurement/repository"
)

type measurementRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MeasurementRepository { return &measurementRepo{db} }

func (r *measurementRepo) Create(m *entities.Measurement) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	return ledgererr.FromGorm(err)
}

func (r *measurementRepo) Update(m *entities.Measurement) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Measurement{}).Where("id = ?", m.ID).Updates(map[string]any{
			"acr":            m.Acr,
			"price_per_acre": m.PricePerAcre,
			"total":          m.Total,
			"owner_name":     m.OwnerName,
			"mobile":         m.Mobile,
			"nic":            m.NIC,
			"driver_name":    m.DriverName,
			"broker_name":    m.BrokerName,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ledgererr.ErrNotFound
		}
		return nil
	})
	return ledgererr.FromGorm(err)
}

func (r *measurementRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Measurement{}, id)
	if res.Error != nil {
		return ledgererr.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledgererr.ErrNotFound
	}
	return nil
}

func (r *measurementRepo) List() ([]entities.Measurement, error) {
	var out []entities.Measurement
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}

func (r *measurementRepo) FindByID(id uint) (*entities.Measurement, error) {
	var out entities.Measurement
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return &out, nil
}

func (r *measurementRepo) ListByDriver(driverName string) ([]entities.Measurement, error) {
	return r.listByName("driver_name", driverName)
}

func (r *measurementRepo) ListByBroker(brokerName string) ([]entities.Measurement, error) {
	return r.listByName("broker_name", brokerName)
}

func (r *measurementRepo) listByName(column, name string) ([]entities.Measurement, error) {
	q := r.db.Model(&entities.Measurement{})
	if name != "" {
		q = q.Where(column+" = ?", name)
	}
	var out []entities.Measurement
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}

func (r *measurementRepo) TotalAcr() (float64, error)    { return r.sum("acr") }
func (r *measurementRepo) TotalAmount() (float64, error) { return r.sum("total") }

func (r *measurementRepo) sum(column string) (float64, error) {
	var v float64
	err := r.db.Model(&entities.Measurement{}).
		Select("COALESCE(SUM(" + column + "), 0)").
		Scan(&v).Error
	if err != nil {
		return 0, ledgererr.FromGorm(err)
	}
	return v, nil
}

func (r *measurementRepo) DriverNames() ([]string, error) { return r.names("driver_name") }
func (r *measurementRepo) BrokerNames() ([]string, error) { return r.names("broker_name") }

func (r *measurementRepo) names(column string) ([]string, error) {
	var out []string
	err := r.db.Model(&entities.Measurement{}).
		Distinct().
		Where(column+" IS NOT NULL AND "+column+" != ''").
		Order(column + " ASC").
		Pluck(column, &out).Error
	if err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}
