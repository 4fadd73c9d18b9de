package controller

import "github.com/labstack/echo/v4"

type PaymentController interface {
	Record(c echo.Context) error
	Summary(c echo.Context) error
	History(c echo.Context) error
}
