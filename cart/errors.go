package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity rejects add/update calls with a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNotFound means a quantity update targeted a product that has no
	// line in the user's cart.
	ErrNotFound = errors.New("cart item not found")

	// ErrNoIdentity means an operation was attempted without an
	// authenticated user ID.
	ErrNoIdentity = errors.New("no authenticated user")
)

// LoadError wraps a failure to read the cart from the store (store
// unreachable, identity absent). The cached snapshot is left untouched.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load cart: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
