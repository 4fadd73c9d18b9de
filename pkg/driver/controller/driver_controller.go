package controller

import "github.com/labstack/echo/v4"

type DriverController interface {
	Create(c echo.Context) error
	Rename(c echo.Context) error
	Delete(c echo.Context) error
	List(c echo.Context) error
	AddDetail(c echo.Context) error
	ListDetails(c echo.Context) error
}
