package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"landledger/config"
	svc "landledger/pkg/commission/service"
	"landledger/pkg/ledgererr"
)

type CommissionCtrl struct{ svc svc.CommissionService }

func New(s svc.CommissionService) *CommissionCtrl { return &CommissionCtrl{svc: s} }

func fail(c echo.Context, funcName string, err error) error {
	status := ledgererr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError("commission", funcName, err, nil)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *CommissionCtrl) PerDriver(c echo.Context) error {
	rows, err := h.svc.PerDriver(c.QueryParam("driver"))
	if err != nil {
		return fail(c, "PerDriver", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CommissionCtrl) PerBroker(c echo.Context) error {
	rows, err := h.svc.PerBroker(c.QueryParam("broker"))
	if err != nil {
		return fail(c, "PerBroker", err)
	}
	return c.JSON(http.StatusOK, rows)
}
