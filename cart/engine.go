package cart

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AldeNeto/baby/models"
)

// Line is one cart entry joined with its product.
type Line struct {
	Product   models.Product  `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Cart is a point-in-time snapshot of a user's cart with its derived totals.
type Cart struct {
	Lines      []Line          `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (c Cart) Empty() bool { return len(c.Lines) == 0 }

// Notifier receives the new snapshot after every successful mutation.
// Implementations must not block.
type Notifier interface {
	CartChanged(userID string, snapshot Cart)
}

// Engine owns the server-side view of each user's cart. Every mutation is
// persisted first and the snapshot rebuilt from what the store returns, so
// the cached state never drifts ahead of the database. On any error the
// cached snapshot is left exactly as it was.
type Engine struct {
	store    Store
	notifier Notifier

	mu        sync.RWMutex
	snapshots map[string]Cart
}

func NewEngine(store Store, notifier Notifier) *Engine {
	return &Engine{
		store:     store,
		notifier:  notifier,
		snapshots: make(map[string]Cart),
	}
}

// Snapshot returns the last successfully loaded cart for the user. The
// second result reports whether anything has been loaded yet.
func (e *Engine) Snapshot(userID string) (Cart, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.snapshots[userID]
	return c, ok
}

// Load fetches the user's cart lines from the store and replaces the cached
// snapshot wholesale (last fetch wins).
func (e *Engine) Load(ctx context.Context, userID string) (Cart, error) {
	if userID == "" {
		return Cart{}, &LoadError{Err: ErrNoIdentity}
	}

	items, err := e.store.FetchLines(ctx, userID)
	if err != nil {
		return Cart{}, &LoadError{Err: err}
	}

	snapshot := build(items)
	e.mu.Lock()
	e.snapshots[userID] = snapshot
	e.mu.Unlock()

	return snapshot, nil
}

// Add puts quantity units of a product into the cart. If the product already
// has a line its quantity is incremented; otherwise a new line is created.
func (e *Engine) Add(ctx context.Context, userID string, productID uint, quantity int) (Cart, error) {
	if userID == "" {
		return Cart{}, ErrNoIdentity
	}
	if quantity < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	existing, err := e.store.FetchLine(ctx, userID, productID)
	if err != nil {
		return Cart{}, err
	}

	if existing != nil {
		if _, err := e.store.UpdateLineQuantity(ctx, userID, productID, existing.Quantity+quantity); err != nil {
			return Cart{}, err
		}
	} else {
		item := models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := e.store.InsertLine(ctx, &item); err != nil {
			return Cart{}, err
		}
	}

	return e.refresh(ctx, userID)
}

// UpdateQuantity sets the quantity on an existing line. A quantity of zero
// or less removes the line instead.
func (e *Engine) UpdateQuantity(ctx context.Context, userID string, productID uint, quantity int) (Cart, error) {
	if userID == "" {
		return Cart{}, ErrNoIdentity
	}
	if quantity <= 0 {
		return e.Remove(ctx, userID, productID)
	}

	updated, err := e.store.UpdateLineQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return Cart{}, err
	}
	if !updated {
		return Cart{}, ErrNotFound
	}

	return e.refresh(ctx, userID)
}

// Remove deletes the line for a product. Removing a product that is not in
// the cart is a no-op.
func (e *Engine) Remove(ctx context.Context, userID string, productID uint) (Cart, error) {
	if userID == "" {
		return Cart{}, ErrNoIdentity
	}

	if err := e.store.DeleteLine(ctx, userID, productID); err != nil {
		return Cart{}, err
	}

	return e.refresh(ctx, userID)
}

// Clear deletes every line in the user's cart.
func (e *Engine) Clear(ctx context.Context, userID string) (Cart, error) {
	if userID == "" {
		return Cart{}, ErrNoIdentity
	}

	if err := e.store.DeleteLines(ctx, userID); err != nil {
		return Cart{}, err
	}

	return e.refresh(ctx, userID)
}

// refresh re-reads the authoritative state after a successful write, caches
// it and tells the notifier. Mutations go through here rather than patching
// the snapshot locally, so concurrent writes from another device are picked
// up instead of overwritten.
func (e *Engine) refresh(ctx context.Context, userID string) (Cart, error) {
	items, err := e.store.FetchLines(ctx, userID)
	if err != nil {
		return Cart{}, &LoadError{Err: err}
	}

	snapshot := build(items)
	e.mu.Lock()
	e.snapshots[userID] = snapshot
	e.mu.Unlock()

	if e.notifier != nil {
		e.notifier.CartChanged(userID, snapshot)
	}
	return snapshot, nil
}

// build derives the snapshot from raw lines. Totals are always recomputed
// here, never cached independently of the lines.
func build(items []models.CartItem) Cart {
	c := Cart{
		Lines:      make([]Line, 0, len(items)),
		TotalPrice: decimal.Zero,
	}
	for _, item := range items {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		c.Lines = append(c.Lines, Line{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		c.TotalItems += item.Quantity
		c.TotalPrice = c.TotalPrice.Add(lineTotal)
	}
	return c
}
