package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BUDGET_CURRENCY", "BUDGET_DEMO_EXPENSES", "BUDGET_SEED", "LOG_FORMAT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 20, cfg.DemoExpenses)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "human", cfg.LogFormat)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUDGET_CURRENCY", "eur")
	t.Setenv("BUDGET_DEMO_EXPENSES", "5")
	t.Setenv("BUDGET_SEED", "42")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 5, cfg.DemoExpenses)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUDGET_DEMO_EXPENSES", "many")
	t.Setenv("BUDGET_SEED", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid BUDGET_DEMO_EXPENSES 'many'")
	assert.Contains(t, err.Error(), "invalid BUDGET_SEED '-1'")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid config should pass",
			cfg:  Config{Currency: "USD", DemoExpenses: 20, LogFormat: "human"},
		},
		{
			name:    "Unknown currency should fail",
			cfg:     Config{Currency: "ZZZ", LogFormat: "human"},
			wantErr: true,
			errMsg:  "unknown currency 'ZZZ'",
		},
		{
			name:    "Negative demo count should fail",
			cfg:     Config{Currency: "USD", DemoExpenses: -3, LogFormat: "human"},
			wantErr: true,
			errMsg:  "invalid demo expense count -3",
		},
		{
			name:    "Unknown log format should fail",
			cfg:     Config{Currency: "USD", LogFormat: "xml"},
			wantErr: true,
			errMsg:  "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
