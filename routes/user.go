package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/AldeNeto/baby/controllers/cart"
	orderControllers "github.com/AldeNeto/baby/controllers/order"
	userControllers "github.com/AldeNeto/baby/controllers/user"
	"github.com/AldeNeto/baby/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.DB))
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Cart))
			cartGroup.GET("/ws", cartControllers.CartWebSocketHandler(deps.Hub))
			cartGroup.POST("/items", cartControllers.AddCartItem(deps.Cart))
			cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(deps.Cart))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(deps.Cart))
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))
		}

		// ──────────────── Checkout & Order History ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(deps.Checkout))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.DB))
		userGroup.GET("/orders/:order_ref", orderControllers.GetOrderByRefHandler(deps.DB))
	}
}
