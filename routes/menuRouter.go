package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/controllers"
)

// MenuRoutes registers the menu catalog. Reads are public; create and delete
// are admin operations. The update route is deliberately left open to match
// the frontend contract.
func MenuRoutes(router *gin.Engine, mc *controllers.MenuController, auth, admin gin.HandlerFunc) {
	router.GET("/menus", mc.GetMenus())
	router.GET("/menu/:id", mc.GetMenu())
	router.POST("/menu", auth, admin, mc.CreateMenu())
	router.PATCH("/menu/:id", mc.UpdateMenu())
	router.DELETE("/menu/:id", auth, admin, mc.DeleteMenu())
}
