package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned by InputConfig.Validate when no network source is set
var ErrNoInput = errors.New("config: input.requestsPath or input.gtfsPath is required")

// Config is the global application configuration
var Config AppConfig

// DefaultPaths is the config file search list used when TRANSIT_CONFIG is unset
var DefaultPaths = []string{"config.yml", "./configs/config.yml"}

// LoadAppConfig loads and validates the application configuration. The first
// readable file of paths wins; with no paths the TRANSIT_CONFIG variable or
// DefaultPaths are searched.
func LoadAppConfig(paths ...string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	if len(paths) == 0 {
		if p := os.Getenv("TRANSIT_CONFIG"); p != "" {
			paths = []string{p}
		} else {
			paths = DefaultPaths
		}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = n
	}
	Config = cfg
	return nil
}

// Parse decodes and validates YAML configuration and fills in defaults
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Validate checks that a network source is configured
func (in InputConfig) Validate() error {
	if in.RequestsPath == "" && in.GTFSPath == "" {
		return ErrNoInput
	}
	return nil
}

// Defaults returns a configuration with every default applied and no input.
// It serves callers that read the network from elsewhere.
func Defaults() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Routing.BusWaitTime == 0 {
		cfg.Routing.BusWaitTime = 6
	}
	if cfg.Routing.BusVelocity == 0 {
		cfg.Routing.BusVelocity = 40
	}
	r := &cfg.Render
	if r.Width == 0 {
		r.Width = 1200
	}
	if r.Height == 0 {
		r.Height = 1200
	}
	if r.Padding == 0 {
		r.Padding = 50
	}
	if r.LineWidth == 0 {
		r.LineWidth = 14
	}
	if r.StopRadius == 0 {
		r.StopRadius = 5
	}
	if r.BusLabelFontSize == 0 {
		r.BusLabelFontSize = 20
		r.BusLabelOffset = [2]float64{7, 15}
	}
	if r.StopLabelFontSize == 0 {
		r.StopLabelFontSize = 20
		r.StopLabelOffset = [2]float64{7, -3}
	}
	if r.UnderlayerColor == "" {
		r.UnderlayerColor = "rgba(255,255,255,0.85)"
	}
	if r.UnderlayerWidth == 0 {
		r.UnderlayerWidth = 3
	}
	if len(r.ColorPalette) == 0 {
		r.ColorPalette = []string{"green", "rgb(255,160,0)", "red"}
	}
	if cfg.Cache.RouteCacheSize == 0 {
		cfg.Cache.RouteCacheSize = 1024
	}
}
