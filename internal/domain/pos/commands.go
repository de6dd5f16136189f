// internal/domain/pos/commands.go
package pos

import (
	"context"
	"fmt"

	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
)

// Command is a single operator action applied to a Session
type Command interface {
	Name() string
	execute(ctx context.Context, s *Session) (Result, error)
}

// Result carries whatever a command produced
type Result struct {
	Line    *cart.Line
	Receipt *receipt.Receipt
}

// AddToCartCommand adds a new line; it never merges with an existing one
type AddToCartCommand struct {
	Product  string
	Quantity int
}

func (AddToCartCommand) Name() string { return "add_to_cart" }

func (c AddToCartCommand) execute(_ context.Context, s *Session) (Result, error) {
	product, ok := s.catalog.Lookup(c.Product)
	if !ok {
		return Result{}, unknownProduct(c.Product)
	}

	if c.Quantity <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, c.Quantity)
	}

	available := product.StockOnHand - s.cart.Reserved(c.Product)
	if c.Quantity > available {
		return Result{}, &InsufficientStockError{
			Product:   c.Product,
			Requested: c.Quantity,
			Available: available,
		}
	}

	line := cart.Line{
		ProductName: c.Product,
		Quantity:    c.Quantity,
		UnitPrice:   product.UnitPrice,
		AddedAt:     s.now().UTC(),
	}
	s.cart.Append(line)

	return Result{Line: &line}, nil
}

// RemoveLineCommand removes the line at a zero-based cart position
type RemoveLineCommand struct {
	Index int
}

func (RemoveLineCommand) Name() string { return "remove_line" }

func (c RemoveLineCommand) execute(_ context.Context, s *Session) (Result, error) {
	removed, ok := s.cart.Remove(c.Index)
	if !ok {
		return Result{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, c.Index, s.cart.Len())
	}
	return Result{Line: &removed}, nil
}

// ClearCartCommand empties the cart unconditionally
type ClearCartCommand struct{}

func (ClearCartCommand) Name() string { return "clear_cart" }

func (ClearCartCommand) execute(_ context.Context, s *Session) (Result, error) {
	s.cart.Clear()
	return Result{}, nil
}

// CheckoutCommand commits the cart against stock and issues a receipt
type CheckoutCommand struct{}

func (CheckoutCommand) Name() string { return "checkout" }

func (CheckoutCommand) execute(ctx context.Context, s *Session) (Result, error) {
	r, err := s.checkout(ctx)
	return Result{Receipt: r}, err
}
