package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/controllers"
)

// UserRoutes registers token issuing and user management. The auth middleware
// validates the bearer token, admin additionally checks the caller's role.
func UserRoutes(router *gin.Engine, uc *controllers.UserController, auth, admin gin.HandlerFunc) {
	router.POST("/jwt", uc.CreateToken())
	router.GET("/users", auth, admin, uc.GetUsers())
	router.GET("/users/admin/:email", auth, uc.CheckAdmin())
	router.POST("/users", uc.CreateUser())
	router.PATCH("/users/admin/:id", auth, admin, uc.PromoteUser())
	router.DELETE("/users/:id", auth, admin, uc.DeleteUser())
}
