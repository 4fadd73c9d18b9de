package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"landledger/entities"
	"landledger/pkg/ledgererr"
	"landledger/pkg/payment"
	"landledger/pkg/payment/repository"
)

type paymentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PaymentRepository { return &paymentRepo{db} }

func (r *paymentRepo) Record(measurementID uint, amountPaid float64, note string) (*entities.Payment, error) {
	var out *entities.Payment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var m entities.Measurement
		if err := tx.First(&m, measurementID).Error; err != nil {
			return err
		}
		p := entities.Payment{MeasurementID: measurementID, AmountPaid: amountPaid, Note: note}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		var paid float64
		if err := tx.Model(&entities.Payment{}).
			Where("measurement_id = ?", measurementID).
			Select("COALESCE(SUM(amount_paid), 0)").
			Scan(&paid).Error; err != nil {
			return err
		}
		if paid > m.Total {
			return fmt.Errorf("%w: paid %.2f would exceed total %.2f",
				ledgererr.ErrValidation, paid, m.Total)
		}
		if err := tx.Model(&entities.Measurement{}).
			Where("id = ?", measurementID).
			Update("paid_amount", paid).Error; err != nil {
			return err
		}
		out = &p
		return nil
	})
	if err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}

func (r *paymentRepo) Summary() ([]payment.Balance, error) {
	var out []payment.Balance
	err := r.db.Raw(`
		SELECT
			m.id AS measurement_id,
			m.owner_name,
			m.total,
			COALESCE(SUM(p.amount_paid), 0) AS paid_amount
		FROM measurements m
		LEFT JOIN payments p ON p.measurement_id = m.id
		GROUP BY m.id, m.owner_name, m.total
		ORDER BY m.id DESC`).Scan(&out).Error
	if err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}

func (r *paymentRepo) History() ([]payment.HistoryEntry, error) {
	var out []payment.HistoryEntry
	err := r.db.Raw(`
		SELECT
			p.id AS payment_id,
			p.amount_paid,
			p.paid_at,
			p.note,
			m.id AS measurement_id,
			m.owner_name,
			m.total,
			m.acr,
			m.price_per_acre,
			m.created_at
		FROM payments p
		INNER JOIN measurements m ON p.measurement_id = m.id
		ORDER BY p.paid_at DESC, p.id DESC`).Scan(&out).Error
	if err != nil {
		return nil, ledgererr.FromGorm(err)
	}
	return out, nil
}
