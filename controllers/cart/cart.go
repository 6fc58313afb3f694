package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AldeNeto/baby/cart"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// GET /user/cart
func GetCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		snapshot, err := engine.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// POST /user/cart/items
func AddCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		snapshot, err := engine.Add(c.Request.Context(), userID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// PUT /user/cart/items/:product_id
func UpdateCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snapshot, err := engine.UpdateQuantity(c.Request.Context(), userID, productID, input.Quantity)
		if err != nil {
			if errors.Is(err, cart.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// DELETE /user/cart/items/:product_id
func DeleteCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		snapshot, err := engine.Remove(c.Request.Context(), userID, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// DELETE /user/cart
func ClearCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		snapshot, err := engine.Clear(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
