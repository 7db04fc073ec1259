package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from the environment. A .env file in the
// working directory is picked up first when present.
func Load() error {
	_ = godotenv.Load()

	// API Configuration
	viper.SetDefault("API_ADDR", ":8078")

	// Database Configuration
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "bptracker")

	viper.AutomaticEnv()
	return nil
}

func APIAddr() string { return viper.GetString("API_ADDR") }

// DSN assembles the PostgreSQL connection string from the individual
// POSTGRES_* settings.
func DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		viper.GetString("POSTGRES_USER"),
		viper.GetString("POSTGRES_PASSWORD"),
		viper.GetString("POSTGRES_HOST"),
		viper.GetInt("POSTGRES_PORT"),
		viper.GetString("POSTGRES_DB"),
	)
}
