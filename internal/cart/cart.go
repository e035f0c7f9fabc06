// Package cart manages the shopping cart and the checkout flow. The cart
// persists under its own durable-store key, deliberately outside the
// relational snapshot: abandoning a cart never dirties the database, and a
// degraded database still lets the visitor collect items.
package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Fsince94/PortfolioApp/internal/kvstore"
	"github.com/Fsince94/PortfolioApp/internal/model"
	"github.com/Fsince94/PortfolioApp/internal/service"
)

// DefaultCheckoutDelay is the pacing delay applied to checkout
// submissions. It simulates the latency of a real payment round-trip so
// the flow reads as deliberate rather than instantaneous.
const DefaultCheckoutDelay = 1500 * time.Millisecond

// Cart is a durable shopping cart bound to one data service.
// Safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	kv    *kvstore.Store
	svc   *service.Service
	delay time.Duration
}

// Option configures a Cart.
type Option func(*Cart)

// WithCheckoutDelay overrides the checkout pacing delay. Zero disables it.
func WithCheckoutDelay(d time.Duration) Option {
	return func(c *Cart) {
		c.delay = d
	}
}

// New creates a cart over the given durable store and data service.
func New(kv *kvstore.Store, svc *service.Service, opts ...Option) *Cart {
	c := &Cart{
		kv:    kv,
		svc:   svc,
		delay: DefaultCheckoutDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Items returns the current cart lines in insertion order. Malformed
// persisted cart data reads as an empty cart.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Total returns the cart total: sum of price times quantity.
func (c *Cart) Total() float64 {
	return model.CartTotal(c.Items())
}

// Add puts one unit of the project into the cart. Adding a project already
// present increments its quantity instead of creating a second line.
// Projects without an assigned id are rejected.
func (c *Cart) Add(p model.Project) error {
	if p.ID == 0 {
		return fmt.Errorf("add to cart: project has no id")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load()
	found := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{Project: p, Quantity: 1})
	}
	return c.store(items)
}

// Remove drops the whole line for a project id. Absent ids are a no-op.
func (c *Cart) Remove(projectID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load()
	kept := items[:0]
	for _, it := range items {
		if it.ID != projectID {
			kept = append(kept, it)
		}
	}
	return c.store(kept)
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store([]model.CartItem{})
}

// load reads the persisted cart. Callers hold c.mu.
func (c *Cart) load() []model.CartItem {
	raw, ok := c.kv.Get(kvstore.KeyCart)
	if !ok {
		return []model.CartItem{}
	}
	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		slog.Warn("cart data unreadable; starting empty")
		return []model.CartItem{}
	}
	return items
}

// store persists the cart. Callers hold c.mu.
func (c *Cart) store(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.kv.Set(kvstore.KeyCart, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
