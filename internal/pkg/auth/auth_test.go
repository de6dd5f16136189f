package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "POS Terminal"},
		JWT: config.JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	cfg := testConfig()
	manager := auth.NewJWTManager(cfg)

	token, expiresAt, err := manager.GenerateAccessToken("cashier")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cashier", claims.Operator)
	assert.Equal(t, "operator:cashier", claims.Subject)
	assert.Equal(t, "POS Terminal", claims.Issuer)
}

func TestJWTManager_Rejects(t *testing.T) {
	cfg := testConfig()
	manager := auth.NewJWTManager(cfg)

	token, _, err := manager.GenerateAccessToken("cashier")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = auth.NewJWTManager(other).ValidateAccessToken(token)
	assert.Error(t, err, "wrong secret")

	expired := testConfig()
	expired.JWT.AccessTokenExpiry = -time.Minute
	stale, _, err := auth.NewJWTManager(expired).GenerateAccessToken("cashier")
	require.NoError(t, err)
	_, err = manager.ValidateAccessToken(stale)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = manager.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", auth.ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", auth.ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", auth.ExtractTokenFromHeader(""))
}

func TestPINManager(t *testing.T) {
	cfg := testConfig()
	pins := auth.NewPINManager(cfg)

	hash, err := pins.HashPIN("4321")
	require.NoError(t, err)
	cfg.Operator.PINHash = hash

	require.NoError(t, pins.VerifyPIN("4321"))
	require.ErrorIs(t, pins.VerifyPIN("1234"), auth.ErrInvalidPIN)

	cfg.Operator.PINHash = ""
	require.ErrorIs(t, pins.VerifyPIN("4321"), auth.ErrInvalidPIN)
}

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		name      string
		pin       string
		wantError string
	}{
		{name: "four digits: ok", pin: "0000"},
		{name: "twelve digits: ok", pin: "123456789012"},
		{name: "too short: error", pin: "123", wantError: "pin must be 4 to 12 digits long"},
		{name: "too long: error", pin: "1234567890123", wantError: "pin must be 4 to 12 digits long"},
		{name: "letters: error", pin: "12ab", wantError: "pin must contain digits only"},
		{name: "arabic-indic digits: error", pin: "٣٤٥٦", wantError: "pin must contain digits only"},
		{name: "fullwidth digits: error", pin: "１２３４", wantError: "pin must contain digits only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidatePIN(tt.pin)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
