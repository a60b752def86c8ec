package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jihanchy/bistro-baron-server/models"
	"github.com/Jihanchy/bistro-baron-server/store"
)

type CartController struct {
	carts store.CartStore
}

func NewCartController(carts store.CartStore) *CartController {
	return &CartController{carts: carts}
}

// GetCarts handles GET /carts?email=. Rows are filtered by the buyer email
// given in the query string.
func (cc *CartController) GetCarts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		items, err := cc.carts.ListByEmail(ctx, c.Query("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing cart items"})
			return
		}
		if items == nil {
			items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// AddCart handles POST /carts.
func (cc *CartController) AddCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		menuItemID, err := primitive.ObjectIDFromHex(req.MenuItemID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		item := models.CartItem{
			Email:      &req.Email,
			MenuItemID: menuItemID,
			Name:       &req.Name,
			Image:      &req.Image,
			Price:      &req.Price,
		}
		result, err := cc.carts.Add(ctx, item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item was not added"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteCart handles DELETE /carts/:id.
func (cc *CartController) DeleteCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := cc.carts.Delete(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item was not deleted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
