// internal/domain/pos/session.go
package pos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
	"golang.org/x/text/currency"
)

// Session is the terminal state: the catalog, the active cart and the receipt
// log. All mutation goes through Apply; views are pure reads. A single mutex
// makes concurrent HTTP requests behave like one sequential operator.
type Session struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	cart     *cart.Cart
	receipts receipt.Writer
	currency currency.Unit
	logger   logrus.FieldLogger

	now   func() time.Time
	newID func() uuid.UUID

	lastReceipt *receipt.Receipt
}

// NewSession creates a session over cat with an empty cart
func NewSession(cat *catalog.Catalog, receipts receipt.Writer, cfg *config.Config, logger logrus.FieldLogger) *Session {
	return &Session{
		catalog:  cat,
		cart:     cart.New(),
		receipts: receipts,
		currency: cfg.CurrencyUnit(),
		logger:   logger.WithField("component", "pos"),
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Apply runs one command under the session lock
func (s *Session) Apply(ctx context.Context, cmd Command) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.logger.WithField("command", cmd.Name())

	result, err := cmd.execute(ctx, s)
	switch {
	case err == nil:
		entry.WithField("cart_lines", s.cart.Len()).Info("command applied")
	case errors.Is(err, ErrPersistence):
		entry.WithError(err).Error("command applied, receipt log write failed")
	default:
		entry.WithError(err).Warn("command rejected")
	}

	return result, err
}

// AddToCart appends a line for quantity units of the named product
func (s *Session) AddToCart(name string, quantity int) (cart.Line, error) {
	result, err := s.Apply(context.Background(), AddToCartCommand{Product: name, Quantity: quantity})
	if err != nil {
		return cart.Line{}, err
	}
	return *result.Line, nil
}

// AddToCartInput is AddToCart for quantity text as the operator typed it.
// The product is checked first, so an unknown name wins over bad quantity text.
func (s *Session) AddToCartInput(name, rawQuantity string) (cart.Line, error) {
	if _, err := s.Product(name); err != nil {
		return cart.Line{}, err
	}

	quantity, err := ParseQuantity(rawQuantity)
	if err != nil {
		return cart.Line{}, err
	}

	return s.AddToCart(name, quantity)
}

// RemoveLine deletes the cart line at a zero-based position
func (s *Session) RemoveLine(index int) (cart.Line, error) {
	result, err := s.Apply(context.Background(), RemoveLineCommand{Index: index})
	if err != nil {
		return cart.Line{}, err
	}
	return *result.Line, nil
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	// ClearCartCommand never fails
	_, _ = s.Apply(context.Background(), ClearCartCommand{})
}

// Checkout commits the cart and issues a receipt. On a *PersistenceError the
// returned receipt is still valid: stock was committed and the cart cleared.
func (s *Session) Checkout(ctx context.Context) (*receipt.Receipt, error) {
	result, err := s.Apply(ctx, CheckoutCommand{})
	return result.Receipt, err
}

// Available returns stock on hand minus the quantity reserved in the cart
func (s *Session) Available(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.available(name)
}

// Reserved returns the quantity of name currently held in the cart
func (s *Session) Reserved(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Reserved(name)
}

func (s *Session) available(name string) (int, error) {
	p, ok := s.catalog.Lookup(name)
	if !ok {
		return 0, unknownProduct(name)
	}
	return p.StockOnHand - s.cart.Reserved(name), nil
}

func unknownProduct(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownProduct, name)
}

// ParseQuantity converts operator input to a quantity. Anything that is not a
// whole number above zero is ErrInvalidQuantity.
func ParseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || quantity <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	return quantity, nil
}
