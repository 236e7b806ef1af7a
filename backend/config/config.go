package config

import (
	"errors"
	"log"
	"os"

	"studyjam/backend/catalog"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL string
	SupabaseKey string
	DBUser      string
	DBPort      string
	DBName      string
	ServerPort  string
	Labs        []string
}

// LoadConfig reads the .env file (if present) and the process environment.
// The Supabase URL and key are mandatory: without them the process must not start.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "postgres"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Labs:        catalog.Names(),
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, errors.New("SUPABASE_URL and SUPABASE_KEY must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
