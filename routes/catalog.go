package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogController "github.com/AldeNeto/baby/controllers/catalog"
)

// SetupCatalogRoutes registers the public "/catalog/*" browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/categories", catalogController.GetAllCategories(db))
		catalogGroup.GET("/categories/:id/products", catalogController.GetCategoryProducts(db))
		catalogGroup.GET("/products", catalogController.GetProducts(db))
		catalogGroup.GET("/products/:id", catalogController.GetProductByID(db))
	}
}
