package repository

import (
	"landledger/entities"
	"landledger/pkg/payment"
)

type PaymentRepository interface {
	// Record appends a payment AND refreshes the measurement's cached
	// paid_amount inside one transaction, so the cache can never drift from
	// the log by a crash between the two writes. Fails with ErrNotFound when
	// the measurement does not exist and ErrValidation when the payment would
	// push the paid total past the measurement total.
	Record(measurementID uint, amountPaid float64, note string) (*entities.Payment, error)

	// Summary reconciles every measurement against its payment log.
	Summary() ([]payment.Balance, error)

	// History lists all payments joined to their measurements, newest first.
	History() ([]payment.HistoryEntry, error)
}
