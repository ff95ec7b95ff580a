package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

func SetDefaults() {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "production")
	viper.SetDefault("app.storage", StoragePostgres)
	viper.SetDefault("app.site-url", "http://localhost:8080")
	viper.SetDefault("client.origin", "http://localhost:3000")
	viper.SetDefault("cdn.bucket", "post-images")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("feedback.rate-per-minute", 6)
	viper.SetDefault("feedback.burst", 2)
	viper.SetDefault("cache.ttl", time.Hour)
}

// LoadApp reads the typed application config from viper and the environment.
func LoadApp() AppConfig {
	return AppConfig{
		Env:          viper.GetString("app.env"),
		Storage:      strings.ToLower(viper.GetString("app.storage")),
		SiteURL:      strings.TrimRight(viper.GetString("app.site-url"), "/"),
		ClientOrigin: viper.GetString("client.origin"),
		OwnerUserID:  strings.TrimSpace(os.Getenv("OWNER_USER_ID")),
		JWTSecret:    os.Getenv("AUTH_JWT_SECRET"),
		CacheTTL:     viper.GetDuration("cache.ttl"),
		Feedback: FeedbackConfig{
			RatePerMinute: viper.GetInt("feedback.rate-per-minute"),
			Burst:         viper.GetInt("feedback.burst"),
		},
	}
}

func LoadDB() DBConfig {
	return DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: 10,
	}
}
