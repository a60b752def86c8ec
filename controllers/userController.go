package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/helpers"
	"github.com/Jihanchy/bistro-baron-server/middleware"
	"github.com/Jihanchy/bistro-baron-server/models"
	"github.com/Jihanchy/bistro-baron-server/store"
)

type UserController struct {
	users  store.UserStore
	tokens *helpers.TokenHelper
}

func NewUserController(users store.UserStore, tokens *helpers.TokenHelper) *UserController {
	return &UserController{users: users, tokens: tokens}
}

// CreateToken handles POST /jwt: it signs a one-hour access token for the
// identity payload in the body. Identity is established upstream by the
// frontend's auth provider, so no credential check happens here.
func (uc *UserController) CreateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TokenRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := uc.tokens.GenerateToken(req.Email, req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GetUsers handles GET /users (admin only).
func (uc *UserController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		users, err := uc.users.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// CheckAdmin handles GET /users/admin/:email. Callers may only ask about
// their own email; anything else is a 403.
func (uc *UserController) CheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString(middleware.ContextEmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		admin := false
		user, err := uc.users.FindByEmail(ctx, email)
		if err == nil {
			admin = user.IsAdmin()
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": admin})
	}
}

// CreateUser handles POST /users. Creation is idempotent by email: a second
// signup for a known address is a no-op marker, not an error.
func (uc *UserController) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateUserRequest
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

		if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist", "insertedId": nil})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the email"})
			return
		}

		user := models.User{
			Name:  &req.Name,
			Email: &req.Email,
			Role:  models.RoleRegular,
		}
		result, err := uc.users.Create(ctx, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// PromoteUser handles PATCH /users/admin/:id (admin only).
func (uc *UserController) PromoteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := uc.users.PromoteToAdmin(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not promoted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteUser handles DELETE /users/:id (admin only).
func (uc *UserController) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := uc.users.Delete(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not deleted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
