package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"landledger/config"
	"landledger/pkg/ledgererr"
	svc "landledger/pkg/measurement/service"
)

type MeasurementCtrl struct{ svc svc.MeasurementService }

func New(s svc.MeasurementService) *MeasurementCtrl { return &MeasurementCtrl{svc: s} }

type measurementReq struct {
	Acr          float64 `json:"acr" validate:"gt=0"`
	PricePerAcre float64 `json:"price_per_acre" validate:"gte=0"`
	Total        float64 `json:"total" validate:"gte=0"`
	OwnerName    string  `json:"owner_name" validate:"required"`
	Mobile       string  `json:"mobile"`
	NIC          string  `json:"nic"`
	DriverName   string  `json:"driver_name"`
	BrokerName   string  `json:"broker_name"`
	CreatedAt    string  `json:"created_at"` // optional RFC3339, backdated surveys
}

func (req measurementReq) toInput() (svc.NewMeasurement, error) {
	in := svc.NewMeasurement{
		Acr:          req.Acr,
		PricePerAcre: req.PricePerAcre,
		Total:        req.Total,
		OwnerName:    req.OwnerName,
		Mobile:       req.Mobile,
		NIC:          req.NIC,
		DriverName:   req.DriverName,
		BrokerName:   req.BrokerName,
	}
	if req.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			return in, err
		}
		in.CreatedAt = &t
	}
	return in, nil
}

func fail(c echo.Context, funcName string, err error) error {
	status := ledgererr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError("measurement", funcName, err, nil)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *MeasurementCtrl) Create(c echo.Context) error {
	var req measurementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Create", err)
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad created_at, want RFC3339"})
	}
	m, err := h.svc.Create(in)
	if err != nil {
		return fail(c, "Create", err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MeasurementCtrl) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var req measurementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Update", err)
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad created_at, want RFC3339"})
	}
	m, err := h.svc.Update(uint(id), in)
	if err != nil {
		return fail(c, "Update", err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MeasurementCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return fail(c, "Delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MeasurementCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return fail(c, "List", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MeasurementCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	m, err := h.svc.Get(uint(id))
	if err != nil {
		return fail(c, "Get", err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MeasurementCtrl) Totals(c echo.Context) error {
	acr, amount, err := h.svc.Totals()
	if err != nil {
		return fail(c, "Totals", err)
	}
	return c.JSON(http.StatusOK, map[string]float64{"total_acr": acr, "total_amount": amount})
}

func (h *MeasurementCtrl) DriverNames(c echo.Context) error {
	names, err := h.svc.DriverNames()
	if err != nil {
		return fail(c, "DriverNames", err)
	}
	return c.JSON(http.StatusOK, names)
}

func (h *MeasurementCtrl) BrokerNames(c echo.Context) error {
	names, err := h.svc.BrokerNames()
	if err != nil {
		return fail(c, "BrokerNames", err)
	}
	return c.JSON(http.StatusOK, names)
}
