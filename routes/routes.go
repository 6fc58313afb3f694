package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AldeNeto/baby/cart"
	"github.com/AldeNeto/baby/checkout"
	cartControllers "github.com/AldeNeto/baby/controllers/cart"
)

// Deps carries everything the route groups need.
type Deps struct {
	DB       *gorm.DB
	Cart     *cart.Engine
	Checkout *checkout.Orchestrator
	Hub      *cartControllers.Hub
}

// SetupRoutes is the single entry-point that wires up Auth, Catalog, User
// and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps.DB)

	// Public catalog browsing
	SetupCatalogRoutes(r, deps.DB)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps.DB)
}
