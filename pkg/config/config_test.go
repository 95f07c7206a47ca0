package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraitsura/storefront/pkg/carousel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "products.jsonl", cfg.Catalog)
	assert.True(t, cfg.Carousel.Autoplay)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.NotContains(t, cfg.CartDB, "~")
}

func TestLoad_OverlaysFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
catalog: /srv/catalog/products.jsonl
api_timeout: 3s
carousel:
  slides_per_view:
    0: 1
    100: 4
  gap: 1
  autoplay: true
  interval: 2500ms
  loop: false
  label: Offers
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog/products.jsonl", cfg.Catalog)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 4, cfg.Carousel.SlidesPerView.Resolve(120))
	assert.Equal(t, 2500*time.Millisecond, cfg.Carousel.Interval)
	assert.False(t, cfg.Carousel.Loop)
	assert.True(t, cfg.Carousel.ShowDots, "unset keys keep their defaults")
	assert.Equal(t, "Offers", cfg.Carousel.Label)
}

func TestLoad_InvalidCarousel(t *testing.T) {
	tests := map[string]string{
		"negative gap":     "carousel:\n  gap: -2\n",
		"zero interval":    "carousel:\n  autoplay: true\n  interval: 0s\n",
		"non-numeric keys": "carousel:\n  slides_per_view:\n    wide: 3\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, carousel.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:9999")
	t.Setenv(EnvGeminiKey, "key-123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.APIBaseURL)
	assert.Equal(t, "key-123", cfg.GeminiKey)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/x/y")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "y"), got)

	got, err = ExpandHome("/abs")
	require.NoError(t, err)
	assert.Equal(t, "/abs", got)
}
