// Package config reads the runtime configuration of the command line tool
// from SHOWROOMDOCS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/lvillar/showroomdocs/verify"
)

// Prefix of every environment variable read by Load.
const Prefix = "SHOWROOMDOCS"

// Config holds runtime configuration.
type Config struct {
	// PublicOrigins lists the public base URLs of the back office,
	// comma separated. The first https origin is used in verification links.
	PublicOrigins string `envconfig:"PUBLIC_ORIGINS" default:"http://localhost:3000"`

	AssetRoot     string `envconfig:"ASSET_ROOT" default:"."`
	LogoDir       string `envconfig:"LOGO_DIR" default:"uploads/logos"`
	IconDir       string `envconfig:"ICON_DIR" default:"assets"`
	LetterheadDir string `envconfig:"LETTERHEAD_DIR" default:"uploads/letterheads"`

	CodeSymbology string `envconfig:"CODE_SYMBOLOGY" default:"qr"`
	CodeSize      int    `envconfig:"CODE_SIZE" default:"100"`

	Compress bool `envconfig:"COMPRESS" default:"true"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot work with.
func (c *Config) Validate() error {
	if strings.Trim(c.PublicOrigins, " ,") == "" {
		return errors.New("config: at least one public origin must be provided")
	}
	switch c.Symbology() {
	case verify.QR, verify.DataMatrix:
	default:
		return fmt.Errorf("config: unknown code symbology %q", c.CodeSymbology)
	}
	if c.CodeSize <= 0 {
		return fmt.Errorf("config: code size must be positive, got %d", c.CodeSize)
	}
	return nil
}

// Symbology returns the configured code family.
func (c *Config) Symbology() verify.Symbology {
	return verify.Symbology(strings.ToLower(strings.TrimSpace(c.CodeSymbology)))
}
