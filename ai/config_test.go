package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
	assert.Equal(t, "gpt-4.1-nano-2025-04-14", cfg.Model)
	assert.Equal(t, "", cfg.Token)
	assert.Equal(t, 4000, cfg.MaxTokens)
	assert.Equal(t, 0.1, cfg.Temperature)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
		assert.False(t, cfg.Enabled())
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))

		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("with custom model", func(t *testing.T) {
		cfg := NewConfig(WithModel("qwen2.5:3b"))

		assert.Equal(t, "qwen2.5:3b", cfg.Model)
	})

	t.Run("with token", func(t *testing.T) {
		cfg := NewConfig(WithToken("sk-test"))

		assert.Equal(t, "sk-test", cfg.Token)
		assert.True(t, cfg.Enabled())
	})

	t.Run("with limits", func(t *testing.T) {
		cfg := NewConfig(WithMaxTokens(2000), WithTemperature(0.0))

		assert.Equal(t, 2000, cfg.MaxTokens)
		assert.Equal(t, 0.0, cfg.Temperature)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"strips trailing slash first", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps existing v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"leaves empty host alone", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := NewConfig(WithToken("sk-test"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("normalizes before validating", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive max tokens", func(t *testing.T) {
		cfg := NewConfig(WithMaxTokens(0))
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := NewConfig(WithTemperature(2.5))
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty token is valid", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Validate())
		assert.False(t, cfg.Enabled())
	})
}
