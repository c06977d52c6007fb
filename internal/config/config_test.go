package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvNumThreads, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{NumThreads: 1, LogLevel: "info", LogFormat: "text"}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv(EnvNumThreads, "8")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.NumThreads)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric threads", key: EnvNumThreads, value: "many"},
		{name: "zero threads", key: EnvNumThreads, value: "0"},
		{name: "unknown level", key: EnvLogLevel, value: "trace"},
		{name: "unknown format", key: EnvLogFormat, value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvNumThreads, "")
			t.Setenv(EnvLogLevel, "")
			t.Setenv(EnvLogFormat, "")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestValidate_ReportsField(t *testing.T) {
	err := (&Config{NumThreads: 0, LogLevel: "info", LogFormat: "text"}).Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "NumThreads", verrs[0].Field())
}
