package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/controllers"
)

// PaymentRoutes registers checkout: intent creation, payment recording with
// cart purge, and the caller's own payment history.
func PaymentRoutes(router *gin.Engine, pc *controllers.PaymentController, auth gin.HandlerFunc) {
	router.POST("/create-payment-intent", pc.CreatePaymentIntent())
	router.GET("/payments/:email", auth, pc.GetPayments())
	router.POST("/payment", pc.RecordPayment())
}
