package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/controllers"
)

func ReviewRoutes(router *gin.Engine, rc *controllers.ReviewController) {
	router.GET("/reviews", rc.GetReviews())
}
