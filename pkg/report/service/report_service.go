package service

import "github.com/xuri/excelize/v2"

type ReportService interface {
	// Ledger builds the full workbook: measurements, payment summary and
	// both commission sheets. Pure formatting over the store's queries.
	Ledger() (*excelize.File, error)
}
