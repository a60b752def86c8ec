package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jihanchy/bistro-baron-server/gateway"
	"github.com/Jihanchy/bistro-baron-server/middleware"
	"github.com/Jihanchy/bistro-baron-server/models"
	"github.com/Jihanchy/bistro-baron-server/store"
)

type PaymentController struct {
	payments store.PaymentStore
	gateway  gateway.PaymentGateway
	logger   *slog.Logger
}

func NewPaymentController(payments store.PaymentStore, gw gateway.PaymentGateway, logger *slog.Logger) *PaymentController {
	return &PaymentController{payments: payments, gateway: gw, logger: logger}
}

// CreatePaymentIntent handles POST /create-payment-intent: the price is
// converted to integer minor units and exchanged for a gateway client secret.
func (pc *PaymentController) CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreatePaymentIntentRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		amount := int64(req.Price * 100)

		clientSecret, err := pc.gateway.CreatePaymentIntent(c.Request.Context(), amount)
		if err != nil {
			pc.logger.Error("payment intent failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create payment intent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}

// GetPayments handles GET /payments/:email. Callers may only list their own
// payments.
func (pc *PaymentController) GetPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString(middleware.ContextEmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		payments, err := pc.payments.ListByEmail(ctx, email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing payments"})
			return
		}
		if payments == nil {
			payments = []models.Payment{}
		}
		c.JSON(http.StatusOK, payments)
	}
}

// RecordPayment handles POST /payment: it stores the payment document and
// purges the cart rows it covers in one transactional store call, returning
// both operation results the way the driver reports them.
func (pc *PaymentController) RecordPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RecordPaymentRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cartIDs, err := toObjectIDs(req.CartIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
			return
		}
		menuItemIDs, err := toObjectIDs(req.MenuItemIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
			return
		}

		status := req.Status
		if status == "" {
			status = "pending"
		}

		payment := models.Payment{
			Email:         &req.Email,
			Price:         &req.Price,
			TransactionID: &req.TransactionID,
			Date:          time.Now().UTC(),
			CartIDs:       cartIDs,
			MenuItemIDs:   menuItemIDs,
			Status:        &status,
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		paymentResult, deletedResult, err := pc.payments.Record(ctx, payment)
		if err != nil {
			pc.logger.Error("payment record failed", "email", req.Email, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment was not recorded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"paymentResult": paymentResult,
			"deletedResult": deletedResult,
		})
	}
}

func toObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}
