package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"landledger/config"
	svc "landledger/pkg/broker/service"
	"landledger/pkg/ledgererr"
)

type BrokerCtrl struct{ svc svc.BrokerService }

func New(s svc.BrokerService) *BrokerCtrl { return &BrokerCtrl{svc: s} }

type nameReq struct {
	FirstName string `json:"first_name" validate:"required"`
}

func fail(c echo.Context, funcName string, err error) error {
	status := ledgererr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError("broker", funcName, err, nil)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *BrokerCtrl) Create(c echo.Context) error {
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Create", err)
	}
	b, err := h.svc.Add(req.FirstName)
	if err != nil {
		return fail(c, "Create", err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BrokerCtrl) Rename(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Rename", err)
	}
	if err := h.svc.Rename(uint(id), req.FirstName); err != nil {
		return fail(c, "Rename", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BrokerCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return fail(c, "Delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BrokerCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return fail(c, "List", err)
	}
	return c.JSON(http.StatusOK, out)
}
