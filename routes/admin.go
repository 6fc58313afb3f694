package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/AldeNeto/baby/controllers/admin"
	catalogController "github.com/AldeNeto/baby/controllers/catalog"
	orderControllers "github.com/AldeNeto/baby/controllers/order"
	userControllers "github.com/AldeNeto/baby/controllers/user"
	"github.com/AldeNeto/baby/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", catalogController.CreateProduct(db))
			productAdmin.PUT("/:id", catalogController.UpdateProduct(db))
			productAdmin.DELETE("/:id", catalogController.DeleteProduct(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", catalogController.CreateCategory(db))
			categoryAdmin.PUT("/:id", catalogController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", catalogController.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.GET("/export", adminController.ExportOrdersToExcel(db))
		}
	}
}
