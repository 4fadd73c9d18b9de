package service

import (
	"landledger/entities"
	"landledger/pkg/payment"
)

type PaymentService interface {
	Record(measurementID uint, amountPaid float64, note string) (*entities.Payment, error)
	Summary() ([]payment.Balance, error)
	History() ([]payment.HistoryEntry, error)
}
