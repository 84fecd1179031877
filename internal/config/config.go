package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		OAuth
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret     string
		TokenLifetime time.Duration
		BcryptCost    int
	}
	OAuth struct {
		GoogleClientID string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("auth_jwt_secret", "")         // Required; startup fails if empty
	v.SetDefault("auth_token_lifetime", "168h") // 7 days
	v.SetDefault("auth_bcrypt_cost", 10)        // bcrypt cost factor

	// OAuth defaults
	v.SetDefault("google_oauth_client_id", "") // OAuth login disabled if empty

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("AUTH_JWT_SECRET"),
			TokenLifetime: v.GetDuration("AUTH_TOKEN_LIFETIME"),
			BcryptCost:    v.GetInt("AUTH_BCRYPT_COST"),
		},
		OAuth: OAuth{
			GoogleClientID: v.GetString("GOOGLE_OAUTH_CLIENT_ID"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
