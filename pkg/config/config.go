// Package config loads storefront settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kraitsura/storefront/pkg/carousel"
)

// Environment overrides.
const (
	EnvAPIURL    = "STOREFRONT_API_URL"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// DefaultDir is the per-user state directory, relative to the home directory.
const DefaultDir = ".storefront"

// Config is the full application configuration.
type Config struct {
	Catalog     string          `yaml:"catalog"`
	CartDB      string          `yaml:"cart_db"`
	SessionFile string          `yaml:"session_file"`
	LogFile     string          `yaml:"log_file"`
	APIBaseURL  string          `yaml:"api_base_url"`
	APITimeout  time.Duration   `yaml:"api_timeout"`
	ListenAddr  string          `yaml:"listen_addr"`
	ChatModel   string          `yaml:"chat_model"`
	GeminiKey   string          `yaml:"-"`
	Carousel    carousel.Config `yaml:"carousel"`
}

// Default returns the built-in configuration.
func Default() Config {
	cc := carousel.DefaultConfig()
	cc.Autoplay = true
	cc.Label = "Products"
	return Config{
		Catalog:     "products.jsonl",
		CartDB:      filepath.Join("~", DefaultDir, "cart.db"),
		SessionFile: filepath.Join("~", DefaultDir, "auth_token"),
		LogFile:     filepath.Join("~", DefaultDir, "storefront.log"),
		APIBaseURL:  "https://api.example.com",
		APITimeout:  10 * time.Second,
		ListenAddr:  ":8080",
		ChatModel:   "gemini-2.5-flash",
		Carousel:    cc,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.expandPaths(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIBaseURL = v
	}
	c.GeminiKey = strings.TrimSpace(os.Getenv(EnvGeminiKey))
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Catalog, &c.CartDB, &c.SessionFile, &c.LogFile} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("config: catalog path is empty")
	}
	if c.APITimeout < 0 {
		return fmt.Errorf("config: api_timeout must not be negative")
	}
	if err := c.Carousel.Validate(); err != nil {
		return fmt.Errorf("config: carousel: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
