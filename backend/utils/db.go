package utils

import (
	"fmt"

	"studyjam/backend/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to the Supabase-hosted Postgres instance. The store host and
// access key come from config; a nil return with an error leaves the caller to
// decide whether the process can run degraded.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		cfg.SupabaseURL, cfg.DBUser, cfg.SupabaseKey, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to participant store: %w", err)
	}
	return db, nil
}
