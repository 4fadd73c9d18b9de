package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	LicenseEndpoint string
	LicenseKey      string
	DeviceID        string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Asia/Colombo"),
		DBPath:          get("DB_PATH", "land_measurements.db"),
		LicenseEndpoint: get("LICENSE_ENDPOINT", ""),
		LicenseKey:      get("LICENSE_KEY", ""),
		DeviceID:        get("DEVICE_ID", ""),
	}
	log.Printf("[cfg] port=%s db=%s", cfg.Port, cfg.DBPath)
	return cfg
}
