package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopverse/storefront/internal/domain/cart"
	"github.com/shopverse/storefront/internal/domain/catalog"
	"github.com/shopverse/storefront/internal/infrastructure/notify"
)

// Service is the cart store: it owns the cart lines exclusively and is the
// only writer. Every mutation signals the notification sink; derived reads
// are recomputed from current lines on each call.
type Service struct {
	cart     *cart.Cart
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewService creates a cart service
func NewService(notifier notify.Notifier, logger *zap.Logger) *Service {
	return &Service{
		cart:     cart.New(),
		notifier: notifier,
		logger:   logger.Named("cart"),
	}
}

// AddToCart adds one unit of the product to the cart. It always succeeds:
// the store enforces no stock ceiling, leaving any clamping to display
// layers.
func (s *Service) AddToCart(p catalog.Product) cart.Line {
	line, created := s.cart.Add(p)

	if created {
		s.notifier.Publish(notify.Notification{
			Title:       "Added to cart",
			Description: fmt.Sprintf("%s has been added to your cart", p.Name),
			Severity:    notify.SeverityDefault,
		})
	} else {
		s.notifier.Publish(notify.Notification{
			Title:       "Updated cart",
			Description: fmt.Sprintf("Increased quantity of %s", p.Name),
			Severity:    notify.SeverityDefault,
		})
	}

	s.logger.Debug("product added to cart",
		zap.Int("product_id", p.ID),
		zap.Int("quantity", line.Quantity),
	)
	return line
}

// RemoveFromCart removes the line for the given product. Removing an absent
// id is a silent no-op; the removal notification fires only when a line
// existed.
func (s *Service) RemoveFromCart(productID int) {
	removed, ok := s.cart.Remove(productID)
	if !ok {
		return
	}

	s.notifier.Publish(notify.Notification{
		Title:       "Removed from cart",
		Description: fmt.Sprintf("%s has been removed from your cart", removed.Name),
		Severity:    notify.SeverityDestructive,
	})
	s.logger.Debug("product removed from cart", zap.Int("product_id", productID))
}

// UpdateQuantity replaces the quantity of the line for the given product.
// A quantity of zero or less behaves exactly like RemoveFromCart.
func (s *Service) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	if _, ok := s.cart.SetQuantity(productID, quantity); ok {
		s.logger.Debug("cart quantity updated",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity),
		)
	}
}

// ClearCart empties the cart unconditionally and always notifies
func (s *Service) ClearCart() {
	s.cart.Clear()

	s.notifier.Publish(notify.Notification{
		Title:       "Cart cleared",
		Description: "All items have been removed from your cart",
		Severity:    notify.SeverityDefault,
	})
	s.logger.Debug("cart cleared")
}

// Items returns the current cart lines in insertion order
func (s *Service) Items() []cart.Line {
	return s.cart.Lines()
}

// CartCount returns the sum of quantities over all lines
func (s *Service) CartCount() int {
	return s.cart.Count()
}

// CartTotal returns the sum of price x quantity over all lines
func (s *Service) CartTotal() decimal.Decimal {
	return s.cart.Subtotal()
}
