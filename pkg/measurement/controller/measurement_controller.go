package controller

import "github.com/labstack/echo/v4"

type MeasurementController interface {
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Totals(c echo.Context) error
	DriverNames(c echo.Context) error
	BrokerNames(c echo.Context) error
}
