package serviceImp

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	commSvc "landledger/pkg/commission/service"
	measRepo "landledger/pkg/measurement/repository"
	payRepo "landledger/pkg/payment/repository"
	svc "landledger/pkg/report/service"
)

const dateFmt = "2006-01-02 15:04"

type service struct {
	measurements measRepo.MeasurementRepository
	payments     payRepo.PaymentRepository
	commissions  commSvc.CommissionService
}

func New(m measRepo.MeasurementRepository, p payRepo.PaymentRepository, c commSvc.CommissionService) svc.ReportService {
	return &service{measurements: m, payments: p, commissions: c}
}

func (s *service) Ledger() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.measurementSheet(f); err != nil {
		return nil, err
	}
	if err := s.paymentSheet(f); err != nil {
		return nil, err
	}
	if err := s.commissionSheets(f); err != nil {
		return nil, err
	}

	// excelize names the initial sheet "Sheet1"; everything real is added above
	f.DeleteSheet("Sheet1")
	return f, nil
}

func setRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) measurementSheet(f *excelize.File) error {
	ms, err := s.measurements.List()
	if err != nil {
		return err
	}
	rows := make([][]interface{}, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, []interface{}{
			m.ID, m.OwnerName, m.Acr, m.PricePerAcre, m.Total,
			m.DriverName, m.BrokerName, m.PaidAmount, m.CreatedAt.Format(dateFmt),
		})
	}
	return setRows(f, "Measurements",
		[]interface{}{"ID", "Owner", "Acres", "Price/Acre", "Total", "Driver", "Broker", "Paid", "Date"},
		rows)
}

func (s *service) paymentSheet(f *excelize.File) error {
	balances, err := s.payments.Summary()
	if err != nil {
		return err
	}
	rows := make([][]interface{}, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, []interface{}{
			b.MeasurementID, b.OwnerName, b.Total, b.PaidAmount, b.Outstanding(),
		})
	}
	return setRows(f, "Payment Summary",
		[]interface{}{"Measurement", "Owner", "Total", "Paid", "Balance"},
		rows)
}

func (s *service) commissionSheets(f *excelize.File) error {
	drivers, err := s.commissions.PerDriver("")
	if err != nil {
		return err
	}
	driverRows := make([][]interface{}, 0, len(drivers))
	for _, r := range drivers {
		driverRows = append(driverRows, []interface{}{
			r.ID, r.OwnerName, r.DriverName, r.Total, r.CommissionAmount, r.CreatedAt.Format(dateFmt),
		})
	}
	if err := setRows(f, "Driver Commission",
		[]interface{}{"Measurement", "Owner", "Driver", "Total", "Commission", "Date"},
		driverRows); err != nil {
		return err
	}

	brokers, err := s.commissions.PerBroker("")
	if err != nil {
		return err
	}
	brokerRows := make([][]interface{}, 0, len(brokers))
	for _, r := range brokers {
		brokerRows = append(brokerRows, []interface{}{
			r.ID, r.OwnerName, r.BrokerName, r.Acr, r.CommissionAmount, r.CreatedAt.Format(dateFmt),
		})
	}
	return setRows(f, "Broker Commission",
		[]interface{}{"Measurement", "Owner", "Broker", "Acres", "Commission", "Date"},
		brokerRows)
}

// Filename is the attachment name for the exported workbook.
func Filename() string {
	return fmt.Sprintf("ledger_%s.xlsx", time.Now().Format("20060102"))
}
