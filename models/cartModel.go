package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a pending purchase row in the 'carts' collection, waiting for
// checkout. Rows are removed one by one or in bulk once paid for.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      *string            `bson:"email" json:"email" validate:"required,email"`
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menuItemId"`
	Name       *string            `bson:"name" json:"name" validate:"required"`
	Image      *string            `bson:"image" json:"image"`
	Price      *float64           `bson:"price" json:"price" validate:"required,gt=0"`
}

// AddCartItemRequest is the body of POST /carts.
type AddCartItemRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	MenuItemID string  `json:"menuItemId" validate:"required,len=24,hexadecimal"`
	Name       string  `json:"name" validate:"required"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}
