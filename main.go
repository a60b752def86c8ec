// Bistro Baron server: REST backend for the restaurant ordering app, built on
// Gin with MongoDB for storage and Stripe for payments.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/config"
	"github.com/Jihanchy/bistro-baron-server/controllers"
	"github.com/Jihanchy/bistro-baron-server/database"
	"github.com/Jihanchy/bistro-baron-server/gateway"
	"github.com/Jihanchy/bistro-baron-server/helpers"
	"github.com/Jihanchy/bistro-baron-server/middleware"
	"github.com/Jihanchy/bistro-baron-server/routes"
	"github.com/Jihanchy/bistro-baron-server/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("mongodb disconnect failed", "error", err)
		}
	}()
	logger.Info("connected to mongodb", "database", cfg.DatabaseName)

	if err := database.EnsureIndexes(ctx, client.Database(cfg.DatabaseName)); err != nil {
		logger.Error("index bootstrap failed", "error", err)
		os.Exit(1)
	}

	usersColl := database.OpenCollection(client, cfg.DatabaseName, "users")
	menusColl := database.OpenCollection(client, cfg.DatabaseName, "menus")
	reviewsColl := database.OpenCollection(client, cfg.DatabaseName, "reviews")
	cartsColl := database.OpenCollection(client, cfg.DatabaseName, "carts")
	paymentsColl := database.OpenCollection(client, cfg.DatabaseName, "payments")

	userStore := store.NewUserStoreMongo(usersColl)
	menuStore := store.NewMenuStoreMongo(menusColl)
	reviewStore := store.NewReviewStoreMongo(reviewsColl)
	cartStore := store.NewCartStoreMongo(cartsColl)
	paymentStore := store.NewPaymentStoreMongo(client, paymentsColl, cartsColl)

	tokens := helpers.NewTokenHelper(cfg.TokenSecret)
	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey)

	auth := middleware.Authentication(tokens)
	admin := middleware.VerifyAdmin(userStore)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "bistro baron is sitting")
	})

	routes.UserRoutes(router, controllers.NewUserController(userStore, tokens), auth, admin)
	routes.MenuRoutes(router, controllers.NewMenuController(menuStore), auth, admin)
	routes.ReviewRoutes(router, controllers.NewReviewController(reviewStore))
	routes.CartRoutes(router, controllers.NewCartController(cartStore))
	routes.PaymentRoutes(router, controllers.NewPaymentController(paymentStore, stripeGateway, logger), auth)
	routes.StatsRoutes(router, controllers.NewStatsController(userStore, menuStore, paymentStore), auth, admin)

	logger.Info("bistro baron server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
