package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"landledger/config"
	"landledger/database"
	"landledger/router"

	// Profile
	profileCtrlImp "landledger/pkg/profile/controllerImp"
	profileRepoImp "landledger/pkg/profile/repositoryImp"
	profileSvcImp "landledger/pkg/profile/serviceImp"

	// Driver / Broker
	brokerCtrlImp "landledger/pkg/broker/controllerImp"
	brokerRepoImp "landledger/pkg/broker/repositoryImp"
	brokerSvcImp "landledger/pkg/broker/serviceImp"
	driverCtrlImp "landledger/pkg/driver/controllerImp"
	driverRepoImp "landledger/pkg/driver/repositoryImp"
	driverSvcImp "landledger/pkg/driver/serviceImp"

	// Measurement
	measCtrlImp "landledger/pkg/measurement/controllerImp"
	measRepoImp "landledger/pkg/measurement/repositoryImp"
	measSvcImp "landledger/pkg/measurement/serviceImp"

	// Payment
	payCtrlImp "landledger/pkg/payment/controllerImp"
	payRepoImp "landledger/pkg/payment/repositoryImp"
	paySvcImp "landledger/pkg/payment/serviceImp"

	// Commission
	commCtrlImp "landledger/pkg/commission/controllerImp"
	commSvcImp "landledger/pkg/commission/serviceImp"

	// Report
	reportCtrlImp "landledger/pkg/report/controllerImp"
	reportSvcImp "landledger/pkg/report/serviceImp"

	// License / Health
	healthCtrlImp "landledger/pkg/health/controllerImp"
	"landledger/pkg/license"
	"landledger/pkg/validator"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + schema
	db := database.OpenSQLite(cfg.DBPath)

	// 3) License check, once, non-fatal
	var lic license.Client = license.NewNoop()
	if cfg.LicenseEndpoint != "" {
		lic = license.NewHTTP(cfg.LicenseEndpoint, cfg.LicenseKey, cfg.DeviceID)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if res, err := lic.Check(ctx); err != nil {
		log.Printf("license warn: %v", err)
	} else if !res.Valid {
		log.Printf("license invalid: %s", res.Message)
	}
	cancel()

	// 4) Repos / services / controllers
	profRepo := profileRepoImp.New(db)
	profSvc := profileSvcImp.New(profRepo)
	profCtrl := profileCtrlImp.New(profSvc)

	drvRepo := driverRepoImp.New(db)
	drvCtrl := driverCtrlImp.New(driverSvcImp.New(drvRepo))

	brkRepo := brokerRepoImp.New(db)
	brkCtrl := brokerCtrlImp.New(brokerSvcImp.New(brkRepo))

	mRepo := measRepoImp.New(db)
	mCtrl := measCtrlImp.New(measSvcImp.New(mRepo))

	pRepo := payRepoImp.New(db)
	pCtrl := payCtrlImp.New(paySvcImp.New(pRepo))

	commSvc := commSvcImp.New(mRepo, profRepo)
	commCtrl := commCtrlImp.New(commSvc)

	repCtrl := reportCtrlImp.New(reportSvcImp.New(mRepo, pRepo, commSvc))

	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echoMiddleware.Recover())

	// 6) Router
	r := router.New(
		e,
		profCtrl,
		drvCtrl,
		brkCtrl,
		mCtrl,
		pCtrl,
		commCtrl,
		repCtrl.Ledger,
		hCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
