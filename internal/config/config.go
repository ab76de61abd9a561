package config

import (
	"github.com/maxviazov/pagination-service/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
	CORS       CORSConfig          `mapstructure:"cors"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// PaginationConfig holds the defaults applied to incomplete pagination requests.
type PaginationConfig struct {
	DefaultPerPage  int    `mapstructure:"default_per_page" validate:"min=1,ltefield=MaxPerPage"`
	MaxPerPage      int    `mapstructure:"max_per_page" validate:"min=1"`
	DefaultItemName string `mapstructure:"default_item_name" validate:"required,max=64"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}
