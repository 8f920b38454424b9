package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	httpPortEnvKey      = "HTTP_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"

	// Development fallbacks. Never run these in production.
	defaultPort          = "8080"
	defaultDBConnection  = "host=localhost user=postgres password=postgres dbname=community port=5432 sslmode=disable"
	defaultSessionSecret = "dev-secret-key"
)

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
}

// NewAppConfig reads configuration from the environment, loading a local
// .env file first when one is present. Missing values fall back to
// development defaults.
func NewAppConfig() (App, error) {
	// .env is optional, absence is not an error
	_ = godotenv.Load()

	return App{
		Port:            envOrDefault(httpPortEnvKey, defaultPort),
		DBConnectionURL: envOrDefault(dbConnEnvKey, defaultDBConnection),
		SessionSecret:   envOrDefault(sessionSecretEnvKey, defaultSessionSecret),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
