package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/controllers"
)

// CartRoutes registers the shopping cart. Cart rows are scoped by buyer email
// in the query string rather than by token, matching the frontend contract.
func CartRoutes(router *gin.Engine, cc *controllers.CartController) {
	router.GET("/carts", cc.GetCarts())
	router.POST("/carts", cc.AddCart())
	router.DELETE("/carts/:id", cc.DeleteCart())
}
