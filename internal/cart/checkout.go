package cart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

// CheckoutInfo carries the customer-supplied half of an order.
type CheckoutInfo struct {
	CustomerName     string
	CustomerEmail    string
	PaymentMethod    model.PaymentMethod
	PaymentReference string
}

// Checkout turns the current cart into a pending order and clears the
// cart. The order embeds a frozen snapshot of every line item, with the
// total computed from the cart at this moment.
//
// The pacing delay runs after the order is submitted and always runs to
// completion - checkout does not support cancellation.
func (c *Cart) Checkout(ctx context.Context, info CheckoutInfo) error {
	items := c.Items()
	if len(items) == 0 {
		return fmt.Errorf("checkout: cart is empty")
	}
	if info.CustomerName == "" || info.CustomerEmail == "" {
		return fmt.Errorf("checkout: customer name and email are required")
	}

	order := model.Order{
		CustomerName:     info.CustomerName,
		CustomerEmail:    info.CustomerEmail,
		TotalAmount:      model.CartTotal(items),
		PaymentMethod:    info.PaymentMethod,
		PaymentReference: info.PaymentReference,
		Items:            items,
		Date:             time.Now().UTC().Format(time.RFC3339),
	}

	if err := c.svc.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	if c.delay > 0 {
		time.Sleep(c.delay)
	}

	if err := c.Clear(); err != nil {
		return fmt.Errorf("checkout: clear cart: %w", err)
	}

	slog.Info("checkout complete",
		"customer", info.CustomerName,
		"items", len(items),
		"total", order.TotalAmount,
		"method", string(info.PaymentMethod),
	)
	return nil
}
