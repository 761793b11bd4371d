package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string
	OpenAIKey   string
	OpenAIModel string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	// Local runs keep secrets in .env; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("OPENAI_MODEL"),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}
