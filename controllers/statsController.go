package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/models"
	"github.com/Jihanchy/bistro-baron-server/store"
)

type StatsController struct {
	users    store.UserStore
	menus    store.MenuStore
	payments store.PaymentStore
}

func NewStatsController(users store.UserStore, menus store.MenuStore, payments store.PaymentStore) *StatsController {
	return &StatsController{users: users, menus: menus, payments: payments}
}

// GetAdminStats handles GET /admin-stats (admin only): approximate document
// counts plus total revenue summed across all payments.
func (sc *StatsController) GetAdminStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		users, err := sc.users.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while counting users"})
			return
		}
		menuItems, err := sc.menus.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while counting menu items"})
			return
		}
		orders, err := sc.payments.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while counting payments"})
			return
		}
		revenue, err := sc.payments.TotalRevenue(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while computing revenue"})
			return
		}

		c.JSON(http.StatusOK, models.AdminStats{
			Users:     users,
			MenuItems: menuItems,
			Orders:    orders,
			Revenue:   revenue,
		})
	}
}

// GetOrderStats handles GET /order-stats (admin only): per-category purchase
// quantity and revenue across every recorded payment.
func (sc *StatsController) GetOrderStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		rows, err := sc.payments.OrderStats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while aggregating order stats"})
			return
		}
		if rows == nil {
			rows = []models.CategorySales{}
		}
		c.JSON(http.StatusOK, rows)
	}
}
