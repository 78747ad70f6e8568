package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Verteil  VerteilConfig
	Identity IdentityConfig
	Routes   RoutesConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	MetricsPath string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

type VerteilConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type IdentityConfig struct {
	APIURL       string
	SecretKey    string
	JWTPublicKey string
	Timeout      time.Duration
}

// RoutesConfig holds the redirect destinations used by the access gate.
type RoutesConfig struct {
	SignInPath string
	HomePath   string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "flight-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("METRICS_PATH", "/metrics")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("VERTEIL_TIMEOUT_SECONDS", 30)
	v.SetDefault("IDENTITY_API_URL", "https://api.clerk.com/v1")
	v.SetDefault("IDENTITY_TIMEOUT_SECONDS", 5)
	v.SetDefault("SIGN_IN_PATH", "/sign-in")
	v.SetDefault("HOME_PATH", "/")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Port:        v.GetString("PORT"),
			Debug:       v.GetBool("DEBUG"),
			LogPath:     v.GetString("LOG_PATH"),
			MetricsPath: v.GetString("METRICS_PATH"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Verteil: VerteilConfig{
			BaseURL: v.GetString("VERTEIL_API_URL"),
			APIKey:  v.GetString("VERTEIL_API_KEY"),
			Timeout: time.Duration(v.GetInt("VERTEIL_TIMEOUT_SECONDS")) * time.Second,
		},
		Identity: IdentityConfig{
			APIURL:       v.GetString("IDENTITY_API_URL"),
			SecretKey:    v.GetString("IDENTITY_SECRET_KEY"),
			JWTPublicKey: v.GetString("IDENTITY_JWT_PUBLIC_KEY"),
			Timeout:      time.Duration(v.GetInt("IDENTITY_TIMEOUT_SECONDS")) * time.Second,
		},
		Routes: RoutesConfig{
			SignInPath: v.GetString("SIGN_IN_PATH"),
			HomePath:   v.GetString("HOME_PATH"),
		},
	}

	return config, nil
}

// Presence reports which external settings are configured. No other validation happens.
func (c *Config) Presence() map[string]bool {
	return map[string]bool{
		"database":   c.Database.URL != "",
		"backendApi": c.Verteil.BaseURL != "" && c.Verteil.APIKey != "",
		"identity":   c.Identity.SecretKey != "",
	}
}
