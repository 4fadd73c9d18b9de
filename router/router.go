package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	profileCtrl interface {
		Get(echo.Context) error
		Upsert(echo.Context) error
		PricePerAcre(echo.Context) error
	},
	driverCtrl interface {
		Create(echo.Context) error
		Rename(echo.Context) error
		Delete(echo.Context) error
		List(echo.Context) error
		AddDetail(echo.Context) error
		ListDetails(echo.Context) error
	},
	brokerCtrl interface {
		Create(echo.Context) error
		Rename(echo.Context) error
		Delete(echo.Context) error
		List(echo.Context) error
	},
	measCtrl interface {
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Totals(echo.Context) error
		DriverNames(echo.Context) error
		BrokerNames(echo.Context) error
	},
	payCtrl interface {
		Record(echo.Context) error
		Summary(echo.Context) error
		History(echo.Context) error
	},
	commCtrl interface {
		PerDriver(echo.Context) error
		PerBroker(echo.Context) error
	},
	reportLedger func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.GET("/profile", profileCtrl.Get)
	e.PUT("/profile", profileCtrl.Upsert)
	e.GET("/profile/price-per-acre", profileCtrl.PricePerAcre)

	e.POST("/drivers", driverCtrl.Create)
	e.PUT("/drivers/:id", driverCtrl.Rename)
	e.DELETE("/drivers/:id", driverCtrl.Delete)
	e.GET("/drivers", driverCtrl.List)
	e.POST("/drivers/details", driverCtrl.AddDetail)
	e.GET("/drivers/details", driverCtrl.ListDetails)

	e.POST("/brokers", brokerCtrl.Create)
	e.PUT("/brokers/:id", brokerCtrl.Rename)
	e.DELETE("/brokers/:id", brokerCtrl.Delete)
	e.GET("/brokers", brokerCtrl.List)

	e.POST("/measurements", measCtrl.Create)
	e.PUT("/measurements/:id", measCtrl.Update)
	e.DELETE("/measurements/:id", measCtrl.Delete)
	e.GET("/measurements", measCtrl.List)
	e.GET("/measurements/totals", measCtrl.Totals)
	e.GET("/measurements/:id", measCtrl.Get)

	// names as denormalized into measurements, not the driver/broker tables
	e.GET("/names/drivers", measCtrl.DriverNames)
	e.GET("/names/brokers", measCtrl.BrokerNames)

	e.POST("/measurements/:id/payments", payCtrl.Record)
	e.GET("/payments/summary", payCtrl.Summary)
	e.GET("/payments/history", payCtrl.History)

	e.GET("/commissions/driver", commCtrl.PerDriver)
	e.GET("/commissions/broker", commCtrl.PerBroker)

	e.GET("/reports/ledger.xlsx", reportLedger)

	return e
}
