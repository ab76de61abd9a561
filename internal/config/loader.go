package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaults are registered with viper so every key is known to AutomaticEnv,
// even when the YAML file leaves it out.
var defaults = map[string]any{
	"app.name":                     "pagination-service",
	"app.version":                  "0.1.0",
	"app.env":                      "prod",
	"app.port":                     8080,
	"app.shutdown_timeout":         10,
	"logger.level":                 "",
	"logger.format":                "",
	"logger.output_target":         "",
	"logger.time_field":            "",
	"logger.time_format":           "",
	"logger.service_name":          "",
	"logger.service_version":       "",
	"logger.env":                   "",
	"logger.with_caller":           false,
	"logger.stacktrace":            false,
	"logger.stacktrace_min_level":  "",
	"pagination.default_per_page":  15,
	"pagination.max_per_page":      100,
	"pagination.default_item_name": "items",
	"cors.allowed_origins":         []string{"http://localhost:5173"},
	"cors.allow_credentials":       true,
}

// Load reads path (YAML) and applies APP_* environment overrides, e.g.
// APP_APP_PORT or APP_PAGINATION_MAX_PER_PAGE. A .env file in the working
// directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.inheritLoggerDefaults()
	if err := validator.New().Struct(config.App); err != nil {
		return nil, fmt.Errorf("app config validation error: %w", err)
	}
	if err := validator.New().Struct(config.Pagination); err != nil {
		return nil, fmt.Errorf("pagination config validation error: %w", err)
	}
	return &config, nil
}

// inheritLoggerDefaults fills logger identity from the app section when the
// logger section leaves it out, so both run in the same environment.
func (c *Config) inheritLoggerDefaults() {
	if c.Logger.Env == "" {
		c.Logger.Env = c.App.Env
	}
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = c.App.Name
	}
	if c.Logger.ServiceVersion == "" {
		c.Logger.ServiceVersion = c.App.Version
	}
}
