package controller

import "github.com/labstack/echo/v4"

type CommissionController interface {
	PerDriver(c echo.Context) error
	PerBroker(c echo.Context) error
}
