package cart

import (
	"context"

	"github.com/AldeNeto/baby/models"
)

// Store is the persistence port for cart lines (use an interface to allow
// mocking in tests).
type Store interface {
	// FetchLines returns all cart lines for the user with Product populated.
	FetchLines(ctx context.Context, userID string) ([]models.CartItem, error)

	// FetchLine returns the user's line for one product, or (nil, nil) if
	// there is none.
	FetchLine(ctx context.Context, userID string, productID uint) (*models.CartItem, error)

	InsertLine(ctx context.Context, item *models.CartItem) error

	// UpdateLineQuantity sets the quantity on an existing line. It reports
	// false when no line matched.
	UpdateLineQuantity(ctx context.Context, userID string, productID uint, quantity int) (bool, error)

	// DeleteLine removes the user's line for one product. Deleting an
	// absent line is not an error.
	DeleteLine(ctx context.Context, userID string, productID uint) error

	// DeleteLines removes every line for the user.
	DeleteLines(ctx context.Context, userID string) error
}
