// internal/domain/pos/checkout.go
package pos

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
)

// checkout runs Validating -> Committing -> Persisting -> Cleared. There is no
// rollback: once stock is committed it stays committed even if the log write
// fails. Must be called with s.mu held.
func (s *Session) checkout(ctx context.Context) (*receipt.Receipt, error) {
	entry := s.logger.WithField("command", CheckoutCommand{}.Name())

	entry.WithField("phase", "validating").Debug("checkout phase")
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// Guard only: AddToCart keeps reserved <= stock and nothing else lowers
	// stock while lines are held, so this never fires through the cart
	// operations. If it does, nothing has been decremented yet.
	for name, reserved := range s.cart.ReservedByProduct() {
		product, ok := s.catalog.Lookup(name)
		if !ok {
			return nil, unknownProduct(name)
		}
		if reserved > product.StockOnHand {
			return nil, &InsufficientStockError{
				Product:   name,
				Requested: reserved,
				Available: product.StockOnHand,
			}
		}
	}

	entry.WithField("phase", "committing").Debug("checkout phase")
	r := receipt.New(s.newID(), s.now(), s.currency)
	for _, line := range s.cart.Lines() {
		// Stock is looked up live by name; the total uses the price captured
		// when the line was added.
		if err := s.catalog.Decrement(line.ProductName, line.Quantity); err != nil {
			return nil, fmt.Errorf("catalog.Decrement: %w", err)
		}
		r.AddLine(line.ProductName, line.Quantity, line.UnitPrice)
	}
	s.lastReceipt = r

	entry.WithField("phase", "persisting").Debug("checkout phase")
	// Stock is already committed, so a caller that went away must not drop
	// the record.
	appendErr := s.receipts.Append(context.WithoutCancel(ctx), r)

	entry.WithField("phase", "cleared").Debug("checkout phase")
	s.cart.Clear()

	entry.WithFields(logrus.Fields{
		"receipt_id": r.ID.String(),
		"lines":      len(r.Lines),
		"total":      r.Total.String(),
	}).Info("receipt issued")

	if appendErr != nil {
		return r, &PersistenceError{ReceiptID: r.ID, Err: appendErr}
	}

	return r, nil
}
