package config

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one that loads wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from .env/.env.local. Existing
// process environment variables are never overwritten.
func loadEnvFile() {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load environment file", logfields.File(envPath), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.File(envPath))
		return
	}
}
