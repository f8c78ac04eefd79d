package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Nominatim NominatimConfig
	Overpass  OverpassConfig
	Static    StaticConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

type OverpassConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type StaticConfig struct {
	Dir   string
	Index string
}

type CORSConfig struct {
	AllowOrigins string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional, environment variables alone are enough
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("HOST"),
			Port: viper.GetInt("PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Nominatim: NominatimConfig{
			BaseURL:        viper.GetString("NOMINATIM_BASE_URL"),
			UserAgent:      viper.GetString("NOMINATIM_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODER_TIMEOUT")) * time.Second,
		},
		Overpass: OverpassConfig{
			BaseURL:        viper.GetString("OVERPASS_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("OVERPASS_TIMEOUT")) * time.Second,
		},
		Static: StaticConfig{
			Dir:   viper.GetString("STATIC_DIR"),
			Index: viper.GetString("STATIC_INDEX"),
		},
		CORS: CORSConfig{
			AllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "activity-finder/1.0"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 30 * time.Second
	}
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		// keeps headroom over the 25s evaluation timeout embedded in the query
		cfg.Overpass.RequestTimeout = 40 * time.Second
	}
	if cfg.Static.Dir == "" {
		cfg.Static.Dir = "./static"
	}
	if cfg.Static.Index == "" {
		cfg.Static.Index = "index.html"
	}
	if cfg.CORS.AllowOrigins == "" {
		cfg.CORS.AllowOrigins = "*"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
