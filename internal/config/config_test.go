package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("POS_CURRENCY", "")
	t.Setenv("OPERATOR_PIN_HASH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "receipt.txt", cfg.POS.ReceiptLogPath)
	assert.Equal(t, "UAH", cfg.CurrencyUnit().String())
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("RECEIPT_LOG_PATH", "/tmp/receipts.txt")
	t.Setenv("POS_CURRENCY", "EUR")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/receipts.txt", cfg.POS.ReceiptLogPath)
	assert.Equal(t, "EUR", cfg.CurrencyUnit().String())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Security.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			JWT:    JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
			POS:    POSConfig{ReceiptLogPath: "receipt.txt", Currency: "UAH"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError string
	}{
		{
			name:   "valid config: ok",
			mutate: func(c *Config) {},
		},
		{
			name:      "missing port: error",
			mutate:    func(c *Config) { c.Server.Port = "" },
			wantError: "APP_PORT is required",
		},
		{
			name:      "missing receipt log: error",
			mutate:    func(c *Config) { c.POS.ReceiptLogPath = "" },
			wantError: "RECEIPT_LOG_PATH is required",
		},
		{
			name:      "short secret with auth: error",
			mutate:    func(c *Config) { c.Operator.PINHash = "hash"; c.JWT.Secret = "short" },
			wantError: "JWT_SECRET must be at least 32 characters long",
		},
		{
			name:   "short secret without auth: ok",
			mutate: func(c *Config) { c.JWT.Secret = "short" },
		},
		{
			name:      "redis enabled without host: error",
			mutate:    func(c *Config) { c.Redis.Enabled = true },
			wantError: "REDIS_HOST is required when REDIS_ENABLED is set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_BadCurrency(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8080"},
		POS:    POSConfig{ReceiptLogPath: "receipt.txt", Currency: "NOPE"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POS_CURRENCY")
}
