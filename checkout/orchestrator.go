package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AldeNeto/baby/cart"
	"github.com/AldeNeto/baby/models"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
// Nothing is written to the store in that case.
var ErrEmptyCart = errors.New("cart is empty")

// Error covers any failure during the order / order-items / clear-cart
// sequence. Inconsistent is set when the compensating rollback itself failed
// and an order row without items may have been left behind.
type Error struct {
	Step         string
	Inconsistent bool
	Err          error
}

func (e *Error) Error() string {
	if e.Inconsistent {
		return fmt.Sprintf("checkout failed at %s and rollback failed, store may be inconsistent: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("checkout failed at %s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// OrderStore is the persistence port for orders.
type OrderStore interface {
	InsertOrder(ctx context.Context, order *models.Order) error
	InsertOrderItems(ctx context.Context, items []models.OrderItem) error
	// DeleteOrder removes an order and, by cascade, any items already
	// written for it. Used only for rollback.
	DeleteOrder(ctx context.Context, orderID uint) error
}

// Orchestrator turns the current cart into a persisted order. The store
// offers no multi-statement transaction to the orchestrator, so the sequence
// runs as a saga: order row, then item rows, then cart clear, with a
// compensating order delete if the items cannot be written. The cart is only
// cleared after the items are confirmed persisted, so a failed checkout never
// loses the cart.
//
// Callers must not run two checkouts for the same user concurrently; the
// HTTP layer serializes them by disabling the action while one is in flight.
type Orchestrator struct {
	orders OrderStore
	cart   *cart.Engine
}

func NewOrchestrator(orders OrderStore, cartEngine *cart.Engine) *Orchestrator {
	return &Orchestrator{orders: orders, cart: cartEngine}
}

// PlaceOrder creates one order plus one item per cart line, freezing each
// product's current unit price on the item, then empties the cart.
func (o *Orchestrator) PlaceOrder(ctx context.Context, userID string) (*models.Order, error) {
	snapshot, err := o.cart.Load(ctx, userID)
	if err != nil {
		return nil, &Error{Step: "load cart", Err: err}
	}
	if snapshot.Empty() {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		OrderRef:    generateOrderRef(),
		UserID:      userID,
		TotalAmount: snapshot.TotalPrice,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := o.orders.InsertOrder(ctx, &order); err != nil {
		return nil, &Error{Step: "create order", Err: err}
	}

	items := make([]models.OrderItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}
	if err := o.orders.InsertOrderItems(ctx, items); err != nil {
		// Roll back the order row so no itemless order is ever visible
		// in the user's history. The cart has not been touched. The
		// rollback runs even if the caller's context was cancelled
		// mid-sequence.
		if rbErr := o.orders.DeleteOrder(context.WithoutCancel(ctx), order.ID); rbErr != nil {
			return nil, &Error{Step: "create order items", Inconsistent: true, Err: errors.Join(err, rbErr)}
		}
		return nil, &Error{Step: "create order items", Err: err}
	}

	if _, err := o.cart.Clear(ctx, userID); err != nil {
		// Order and items are persisted; undo them rather than leave the
		// purchase both placed and still in the cart.
		if rbErr := o.orders.DeleteOrder(context.WithoutCancel(ctx), order.ID); rbErr != nil {
			return nil, &Error{Step: "clear cart", Inconsistent: true, Err: errors.Join(err, rbErr)}
		}
		return nil, &Error{Step: "clear cart", Err: err}
	}

	order.Items = items
	return &order, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
