package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/controllers"
)

func StatsRoutes(router *gin.Engine, sc *controllers.StatsController, auth, admin gin.HandlerFunc) {
	router.GET("/admin-stats", auth, admin, sc.GetAdminStats())
	router.GET("/order-stats", auth, admin, sc.GetOrderStats())
}
