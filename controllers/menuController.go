package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/models"
	"github.com/Jihanchy/bistro-baron-server/store"
)

type MenuController struct {
	menus store.MenuStore
}

func NewMenuController(menus store.MenuStore) *MenuController {
	return &MenuController{menus: menus}
}

// GetMenus handles GET /menus.
func (mc *MenuController) GetMenus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		items, err := mc.menus.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing the menu items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetMenu handles GET /menu/:id.
func (mc *MenuController) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		item, err := mc.menus.Get(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateMenu handles POST /menu (admin only).
func (mc *MenuController) CreateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateMenuItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		item := models.MenuItem{
			Name:     &req.Name,
			Recipe:   &req.Recipe,
			Image:    &req.Image,
			Category: &req.Category,
			Price:    &req.Price,
		}
		result, err := mc.menus.Create(ctx, item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateMenu handles PATCH /menu/:id. Only the fields present in the body
// are written.
func (mc *MenuController) UpdateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateMenuItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := mc.menus.Update(ctx, c.Param("id"), req)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item was not updated"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteMenu handles DELETE /menu/:id (admin only).
func (mc *MenuController) DeleteMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := mc.menus.Delete(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item was not deleted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
