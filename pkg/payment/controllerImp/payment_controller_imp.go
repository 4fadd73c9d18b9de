package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"landledger/config"
	"landledger/pkg/ledgererr"
	svc "landledger/pkg/payment/service"
)

type PaymentCtrl struct{ svc svc.PaymentService }

func New(s svc.PaymentService) *PaymentCtrl { return &PaymentCtrl{svc: s} }

type paymentReq struct {
	AmountPaid float64 `json:"amount_paid" validate:"gt=0"`
	Note       string  `json:"note"`
}

func fail(c echo.Context, funcName string, err error) error {
	status := ledgererr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError("payment", funcName, err, nil)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *PaymentCtrl) Record(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Record", err)
	}
	p, err := h.svc.Record(uint(id), req.AmountPaid, req.Note)
	if err != nil {
		return fail(c, "Record", err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentCtrl) Summary(c echo.Context) error {
	out, err := h.svc.Summary()
	if err != nil {
		return fail(c, "Summary", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentCtrl) History(c echo.Context) error {
	out, err := h.svc.History()
	if err != nil {
		return fail(c, "History", err)
	}
	return c.JSON(http.StatusOK, out)
}
