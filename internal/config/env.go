package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DBDriver      string
	DBPath        string
	DBDSN         string
	ExportDir     string
	TemplatesGlob string
}

func LoadEnv() Env {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.TrimSpace(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = "sqlite3"
	}

	dbPath := strings.TrimSpace(os.Getenv("DB_PATH"))
	if dbPath == "" {
		dbPath = "shipments.db"
	}

	exportDir := strings.TrimSpace(os.Getenv("EXPORT_DIR"))
	if exportDir == "" {
		exportDir = "."
	}

	templatesGlob := strings.TrimSpace(os.Getenv("TEMPLATES_GLOB"))
	if templatesGlob == "" {
		templatesGlob = "web/templates/*.html"
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDriver:      driver,
		DBPath:        dbPath,
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		ExportDir:     exportDir,
		TemplatesGlob: templatesGlob,
	}
}
