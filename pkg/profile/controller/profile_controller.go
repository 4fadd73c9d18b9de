package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	Get(c echo.Context) error
	Upsert(c echo.Context) error
	PricePerAcre(c echo.Context) error
}
