// Prints a bcrypt hash for OPERATOR_PIN_HASH.
//
//	go run scripts/generate_pin_hash.go 2468
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/pkg/auth"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_pin_hash.go <pin>")
	}

	cfg := &config.Config{Security: config.SecurityConfig{BcryptCost: 12}}
	pins := auth.NewPINManager(cfg)

	hash, err := pins.HashPIN(os.Args[1])
	if err != nil {
		log.Fatal("Error generating hash: ", err)
	}

	cfg.Operator.PINHash = hash
	if err := pins.VerifyPIN(os.Args[1]); err != nil {
		log.Fatal("Hash verification failed: ", err)
	}

	fmt.Printf("OPERATOR_PIN_HASH=%s\n", hash)
}
