package service

import "landledger/pkg/commission/types"

type CommissionService interface {
	// PerDriver: commission = total × driver_commission% per measurement,
	// optionally filtered to one driver name (exact match), newest first.
	PerDriver(driverName string) ([]types.Row, error)

	// PerBroker: commission = acr × broker_commission_or_amount (a flat
	// per-acre rate, not a percentage).
	PerBroker(brokerName string) ([]types.Row, error)
}
