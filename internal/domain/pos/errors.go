// internal/domain/pos/errors.go
package pos

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrInvalidQuantity   = errors.New("quantity must be a whole number greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrIndexOutOfRange   = errors.New("cart line index out of range")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrPersistence       = errors.New("receipt was not persisted")
	ErrNoReceipt         = errors.New("no receipt issued yet")
)

// InsufficientStockError reports the live availability at the time of the check
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Product, e.Requested, e.Available)
}

// Is lets errors.Is match ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// PersistenceError is returned by checkout when the receipt log append fails.
// Stock has already been committed and the cart cleared when it is returned.
type PersistenceError struct {
	ReceiptID uuid.UUID
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("receipt %s was not persisted: %v", e.ReceiptID, e.Err)
}

// Is lets errors.Is match ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
