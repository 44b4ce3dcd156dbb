package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// No config.yaml in the test working directory, defaults apply.
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.Timeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("API_BASE_URL", "https://catalog.example.com")
	t.Setenv("API_TIMEOUT", "15")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://catalog.example.com", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.Timeout)
}
