package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"landledger/config"
	"landledger/entities"
	svc "landledger/pkg/driver/service"
	"landledger/pkg/ledgererr"
)

type DriverCtrl struct{ svc svc.DriverService }

func New(s svc.DriverService) *DriverCtrl { return &DriverCtrl{svc: s} }

type nameReq struct {
	FirstName string `json:"first_name" validate:"required"`
}

type detailReq struct {
	DriverName    string `json:"driver_name" validate:"required"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

func fail(c echo.Context, funcName string, err error) error {
	status := ledgererr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError("driver", funcName, err, nil)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *DriverCtrl) Create(c echo.Context) error {
	var req nameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Create", err)
	}
	d, err := h.svc.Add(req.FirstName)
	if err != nil {
		return fail(c, "Create", err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DriverCtrl) Rename(c echo.Context) error {
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

func (h *DriverCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return fail(c, "Delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DriverCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return fail(c, "List", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DriverCtrl) AddDetail(c echo.Context) error {
	var req detailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "AddDetail", err)
	}
	d, err := h.svc.AddDetail(entities.DriverDetail{
		DriverName:    req.DriverName,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Notes:         req.Notes,
	})
	if err != nil {
		return fail(c, "AddDetail", err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DriverCtrl) ListDetails(c echo.Context) error {
	out, err := h.svc.ListDetails()
	if err != nil {
		return fail(c, "ListDetails", err)
	}
	return c.JSON(http.StatusOK, out)
}
