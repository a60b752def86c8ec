package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one completed checkout in the 'payments' collection. CartIDs
// holds the cart rows the payment covers; recording a payment deletes exactly
// those rows in the same transaction.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         *string              `bson:"email" json:"email" validate:"required,email"`
	Price         *float64             `bson:"price" json:"price" validate:"required,gt=0"`
	TransactionID *string              `bson:"transaction_id" json:"transactionId" validate:"required"`
	Date          time.Time            `bson:"date" json:"date"`
	CartIDs       []primitive.ObjectID `bson:"cart_ids" json:"cartIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menu_item_ids" json:"menuItemIds"`
	Status        *string              `bson:"status" json:"status"`
}

// RecordPaymentRequest is the body of POST /payment. Identifier lists arrive
// as hex strings and are converted to ObjectIDs before persistence, so the
// order-stats lookup can join them against the menu catalog.
type RecordPaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds" validate:"required,min=1,dive,len=24,hexadecimal"`
	MenuItemIDs   []string `json:"menuItemIds" validate:"required,min=1,dive,len=24,hexadecimal"`
	Status        string   `json:"status"`
}

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CategorySales is one row of the order-stats aggregation: how many menu items
// of a category were purchased across all payments, and for how much.
type CategorySales struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// AdminStats is the response of GET /admin-stats.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
