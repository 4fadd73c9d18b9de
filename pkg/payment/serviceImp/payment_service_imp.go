package serviceImp

import (
	"fmt"

	"landledger/entities"
	"landledger/pkg/ledgererr"
	"landledger/pkg/payment"
	"landledger/pkg/payment/repository"
	svc "landledger/pkg/payment/service"
)

type service struct{ repo repository.PaymentRepository }

func New(r repository.PaymentRepository) svc.PaymentService { return &service{repo: r} }

func (s *service) Record(measurementID uint, amountPaid float64, note string) (*entities.Payment, error) {
	if amountPaid <= 0 {
		return nil, fmt.Errorf("%w: amount_paid must be positive", ledgererr.ErrValidation)
	}
	return s.repo.Record(measurementID, amountPaid, note)
}

func (s *service) Summary() ([]payment.Balance, error) { return s.repo.Summary() }

func (s *service) History() ([]payment.HistoryEntry, error) { return s.repo.History() }
