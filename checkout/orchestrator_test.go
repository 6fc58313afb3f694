package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AldeNeto/baby/cart"
	"github.com/AldeNeto/baby/models"
)

var errStore = errors.New("store unreachable")

// fakeCartStore backs the cart engine in these tests.
type fakeCartStore struct {
	products  map[uint]models.Product
	lines     []models.CartItem
	failClear bool
}

func (s *fakeCartStore) FetchLines(ctx context.Context, userID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, l := range s.lines {
		if l.UserID == userID {
			l.Product = s.products[l.ProductID]
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeCartStore) FetchLine(ctx context.Context, userID string, productID uint) (*models.CartItem, error) {
	for _, l := range s.lines {
		if l.UserID == userID && l.ProductID == productID {
			line := l
			line.Product = s.products[l.ProductID]
			return &line, nil
		}
	}
	return nil, nil
}

func (s *fakeCartStore) InsertLine(ctx context.Context, item *models.CartItem) error {
	s.lines = append(s.lines, *item)
	return nil
}

func (s *fakeCartStore) UpdateLineQuantity(ctx context.Context, userID string, productID uint, quantity int) (bool, error) {
	for i, l := range s.lines {
		if l.UserID == userID && l.ProductID == productID {
			s.lines[i].Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCartStore) DeleteLine(ctx context.Context, userID string, productID uint) error {
	for i, l := range s.lines {
		if l.UserID == userID && l.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeCartStore) DeleteLines(ctx context.Context, userID string) error {
	if s.failClear {
		return errStore
	}
	var kept []models.CartItem
	for _, l := range s.lines {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	return nil
}

// fakeOrderStore records order writes and can fail at chosen steps.
type fakeOrderStore struct {
	orders map[uint][]models.OrderItem
	nextID uint

	failOrder    bool
	failItems    bool
	failRollback bool

	rollbacks int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uint][]models.OrderItem), nextID: 1}
}

func (s *fakeOrderStore) InsertOrder(ctx context.Context, order *models.Order) error {
	if s.failOrder {
		return errStore
	}
	order.ID = s.nextID
	s.nextID++
	s.orders[order.ID] = nil
	return nil
}

func (s *fakeOrderStore) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	if s.failItems {
		return errStore
	}
	for _, item := range items {
		s.orders[item.OrderID] = append(s.orders[item.OrderID], item)
	}
	return nil
}

func (s *fakeOrderStore) DeleteOrder(ctx context.Context, orderID uint) error {
	s.rollbacks++
	if s.failRollback {
		return errStore
	}
	delete(s.orders, orderID)
	return nil
}

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func seededCart(t *testing.T) (*fakeCartStore, *cart.Engine) {
	t.Helper()
	cartStore := &fakeCartStore{
		products: map[uint]models.Product{
			1: {ID: 1, Name: "Soft Rattle", Price: price("10.00")},
			2: {ID: 2, Name: "Bib Set", Price: price("5.50")},
		},
		lines: []models.CartItem{
			{ID: 1, UserID: "u1", ProductID: 1, Quantity: 2},
			{ID: 2, UserID: "u1", ProductID: 2, Quantity: 1},
		},
	}
	return cartStore, cart.NewEngine(cartStore, nil)
}

func TestCheckoutEmptyCart(t *testing.T) {
	cartStore := &fakeCartStore{products: map[uint]models.Product{}}
	engine := cart.NewEngine(cartStore, nil)
	orders := newFakeOrderStore()
	orch := NewOrchestrator(orders, engine)

	_, err := orch.PlaceOrder(context.Background(), "u1")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(orders.orders) != 0 || orders.rollbacks != 0 {
		t.Fatalf("empty-cart checkout must not touch the order store")
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	cartStore, engine := seededCart(t)
	orders := newFakeOrderStore()
	orch := NewOrchestrator(orders, engine)

	order, err := orch.PlaceOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.OrderRef == "" {
		t.Fatalf("expected an order ref")
	}
	if !order.TotalAmount.Equal(price("25.50")) {
		t.Fatalf("expected total 25.50, got %s", order.TotalAmount)
	}

	if len(orders.orders) != 1 {
		t.Fatalf("expected exactly one persisted order, got %d", len(orders.orders))
	}
	items := orders.orders[order.ID]
	if len(items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(items))
	}

	byProduct := map[uint]models.OrderItem{}
	for _, item := range items {
		byProduct[item.ProductID] = item
	}
	if got := byProduct[1]; got.Quantity != 2 || !got.Price.Equal(price("10.00")) {
		t.Fatalf("product 1 item wrong: qty=%d price=%s", got.Quantity, got.Price)
	}
	if got := byProduct[2]; got.Quantity != 1 || !got.Price.Equal(price("5.50")) {
		t.Fatalf("product 2 item wrong: qty=%d price=%s", got.Quantity, got.Price)
	}

	if len(cartStore.lines) != 0 {
		t.Fatalf("cart not cleared after checkout")
	}
}

func TestCheckoutFreezesPrices(t *testing.T) {
	cartStore, engine := seededCart(t)
	orders := newFakeOrderStore()
	orch := NewOrchestrator(orders, engine)

	order, err := orch.PlaceOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// A later catalog price change must not reach past orders.
	p := cartStore.products[1]
	p.Price = price("99.99")
	cartStore.products[1] = p

	for _, item := range orders.orders[order.ID] {
		if item.ProductID == 1 && !item.Price.Equal(price("10.00")) {
			t.Fatalf("order item price changed retroactively: %s", item.Price)
		}
	}
}

func TestCheckoutRollsBackOnItemFailure(t *testing.T) {
	cartStore, engine := seededCart(t)
	orders := newFakeOrderStore()
	orders.failItems = true
	orch := NewOrchestrator(orders, engine)

	_, err := orch.PlaceOrder(context.Background(), "u1")

	var chkErr *Error
	if !errors.As(err, &chkErr) {
		t.Fatalf("expected checkout Error, got %v", err)
	}
	if chkErr.Inconsistent {
		t.Fatalf("successful rollback must not report inconsistency")
	}
	if orders.rollbacks != 1 {
		t.Fatalf("expected one compensating delete, got %d", orders.rollbacks)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("orphaned order left behind after rollback")
	}
	if len(cartStore.lines) != 2 {
		t.Fatalf("cart must be untouched on failed checkout, got %d lines", len(cartStore.lines))
	}
}

func TestCheckoutReportsInconsistentStateWhenRollbackFails(t *testing.T) {
	_, engine := seededCart(t)
	orders := newFakeOrderStore()
	orders.failItems = true
	orders.failRollback = true
	orch := NewOrchestrator(orders, engine)

	_, err := orch.PlaceOrder(context.Background(), "u1")

	var chkErr *Error
	if !errors.As(err, &chkErr) {
		t.Fatalf("expected checkout Error, got %v", err)
	}
	if !chkErr.Inconsistent {
		t.Fatalf("failed rollback must flag inconsistent state")
	}
}

func TestCheckoutRollsBackWhenCartClearFails(t *testing.T) {
	cartStore, engine := seededCart(t)
	cartStore.failClear = true
	orders := newFakeOrderStore()
	orch := NewOrchestrator(orders, engine)

	_, err := orch.PlaceOrder(context.Background(), "u1")

	var chkErr *Error
	if !errors.As(err, &chkErr) {
		t.Fatalf("expected checkout Error, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("order must be rolled back when the cart cannot be cleared")
	}
	if len(cartStore.lines) != 2 {
		t.Fatalf("cart lines lost, got %d", len(cartStore.lines))
	}
}
