package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr  string
	Debug bool
}

// Load reads settings from the environment, overlaying an optional
// .env file first (path from BRIDGE_DOTENV, default ".env"). A missing
// file is fine; plain env vars still apply.
func Load() Config {
	envPath := os.Getenv("BRIDGE_DOTENV")
	if envPath == "" {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	return Config{
		Addr:  getEnv("BRIDGE_ADDR", ":9999"),
		Debug: os.Getenv("BRIDGE_DEBUG") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
