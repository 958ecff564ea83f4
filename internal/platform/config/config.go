package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	UploadsDir    string
	CompanyName   string
	RateLimit     string
	CORSOrigins   []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("COMPANY_NAME", "Comerzia")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:4200")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),
		UploadsDir:    viper.GetString("UPLOADS_DIR"),
		CompanyName:   viper.GetString("COMPANY_NAME"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
		CORSOrigins:   viper.GetStringSlice("CORS_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}
