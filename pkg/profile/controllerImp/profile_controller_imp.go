package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"landledger/config"
	"landledger/entities"
	"landledger/pkg/ledgererr"
	svc "landledger/pkg/profile/service"
)

type ProfileCtrl struct{ svc svc.ProfileService }

func New(s svc.ProfileService) *ProfileCtrl { return &ProfileCtrl{svc: s} }

type profileReq struct {
	FarmName         string  `json:"farm_name" validate:"required"`
	Mobile           string  `json:"mobile"`
	Address          string  `json:"address"`
	PricePerAcre     float64 `json:"price_per_acre" validate:"gte=0"`
	DriverCommission float64 `json:"driver_commission" validate:"gte=0"`
	BrokerCommission float64 `json:"broker_commission_or_amount" validate:"gte=0"`
	SelectedBroker   string  `json:"selected_broker_name"`
}

func fail(c echo.Context, funcName string, err error) error {
	status := ledgererr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		config.LogError("profile", funcName, err, nil)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	p, err := h.svc.Get()
	if err != nil {
		return fail(c, "Get", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Upsert(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, "Upsert", err)
	}
	p, err := h.svc.Upsert(entities.Profile{
		FarmName:         req.FarmName,
		Mobile:           req.Mobile,
		Address:          req.Address,
		PricePerAcre:     req.PricePerAcre,
		DriverCommission: req.DriverCommission,
		BrokerCommission: req.BrokerCommission,
		SelectedBroker:   req.SelectedBroker,
	})
	if err != nil {
		return fail(c, "Upsert", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) PricePerAcre(c echo.Context) error {
	price, err := h.svc.CurrentPricePerAcre()
	if err != nil {
		return fail(c, "PricePerAcre", err)
	}
	return c.JSON(http.StatusOK, map[string]float64{"price_per_acre": price})
}
