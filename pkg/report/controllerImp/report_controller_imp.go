package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"landledger/config"
	svc "landledger/pkg/report/service"
	"landledger/pkg/report/serviceImp"
)

type ReportCtrl struct{ svc svc.ReportService }

func New(s svc.ReportService) *ReportCtrl { return &ReportCtrl{svc: s} }

func (h *ReportCtrl) Ledger(c echo.Context) error {
	f, err := h.svc.Ledger()
	if err != nil {
		config.LogError("report", "Ledger", err, nil)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+serviceImp.Filename()+`"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
