package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/store"
)

type ReviewController struct {
	reviews store.ReviewStore
}

func NewReviewController(reviews store.ReviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// GetReviews handles GET /reviews. Reviews are read-only through the API.
func (rc *ReviewController) GetReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		reviews, err := rc.reviews.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
