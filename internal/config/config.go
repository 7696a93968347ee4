package config

import (
	"encoding/base64"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const AppName = "property-service"

type Config struct {
	AppName      string
	AppPort      string
	AppUrl       string
	DBUrl        string
	JWTSecret    []byte
	SeedDemoData bool
}

// LoadConfig reads the environment (a local .env is honored when present)
// and fails fast on anything the service cannot run without.
func LoadConfig(log *logrus.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found; using process environment")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}

	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		appUrl = "*"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL env var is missing")
	}

	secretB64 := os.Getenv("JWT_SECRET_BASE64")
	if secretB64 == "" {
		log.Fatal("JWT_SECRET_BASE64 env var is missing")
	}
	secret, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		log.WithError(err).Fatal("JWT_SECRET_BASE64 is not valid base64")
	}

	return &Config{
		AppName:      AppName,
		AppPort:      appPort,
		AppUrl:       appUrl,
		DBUrl:        dbURL,
		JWTSecret:    secret,
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}
}
