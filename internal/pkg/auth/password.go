// internal/pkg/auth/password.go
package auth

import (
	"errors"
	"fmt"

	"github.com/your-org/pos-terminal/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPIN is returned when a PIN does not match the configured hash
var ErrInvalidPIN = errors.New("invalid operator PIN")

// PINManager hashes and checks operator PINs
type PINManager struct {
	config *config.Config
}

// NewPINManager creates a new PIN manager
func NewPINManager(cfg *config.Config) *PINManager {
	return &PINManager{
		config: cfg,
	}
}

// HashPIN hashes a PIN using bcrypt
func (p *PINManager) HashPIN(pin string) (string, error) {
	if err := ValidatePIN(pin); err != nil {
		return "", fmt.Errorf("pin validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), p.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPIN checks pin against the configured operator hash
func (p *PINManager) VerifyPIN(pin string) error {
	if p.config.Operator.PINHash == "" {
		return ErrInvalidPIN
	}

	err := bcrypt.CompareHashAndPassword([]byte(p.config.Operator.PINHash), []byte(pin))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPIN
	}
	if err != nil {
		return fmt.Errorf("bcrypt.CompareHashAndPassword: %w", err)
	}

	return nil
}

// ValidatePIN requires 4 to 12 ASCII digits
func ValidatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 12 {
		return fmt.Errorf("pin must be 4 to 12 digits long")
	}

	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("pin must contain digits only")
		}
	}

	return nil
}
