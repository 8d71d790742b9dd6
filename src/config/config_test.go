package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.BaseURL)
	assert.Equal(t, 60, cfg.ListLimit)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POKEAPI_BASE_URL", "http://localhost:8080/api/v2")
	t.Setenv("LIST_LIMIT", "151")
	t.Setenv("HTTP_TIMEOUT", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("BUCKET_NAME", "pokedex-exports")
	t.Setenv("TOPIC_ARN", "arn:aws:sns:eu-west-1:123456789012:pokedex")
	t.Setenv("_HANDLER", "export")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, &Config{
		BaseURL:            "http://localhost:8080/api/v2",
		ListLimit:          151,
		HTTPTimeoutSeconds: 5,
		HTTPTimeout:        5 * time.Second,
		LogLevel:           "debug",
		LogDevelopment:     true,
		AWSRegion:          "eu-west-1",
		BucketName:         "pokedex-exports",
		TopicARN:           "arn:aws:sns:eu-west-1:123456789012:pokedex",
		Handler:            "export",
	}, cfg)
}

func TestLoadDoesNotValidateListLimit(t *testing.T) {
	t.Setenv("LIST_LIMIT", "-1")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, -1, cfg.ListLimit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero timeout", "HTTP_TIMEOUT", "0"},
		{"negative timeout", "HTTP_TIMEOUT", "-3"},
		{"blank base url", "POKEAPI_BASE_URL", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
