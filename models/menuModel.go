package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a dish in the 'menus' collection.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Recipe   *string            `bson:"recipe" json:"recipe" validate:"required"`
	Image    *string            `bson:"image" json:"image" validate:"required,url"`
	Category *string            `bson:"category" json:"category" validate:"required"`
	Price    *float64           `bson:"price" json:"price" validate:"required,gt=0"`
}

// CreateMenuItemRequest is the body of POST /menu.
type CreateMenuItemRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Recipe   string  `json:"recipe" validate:"required"`
	Image    string  `json:"image" validate:"required,url"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// UpdateMenuItemRequest is the body of PATCH /menu/:id. Nil fields are left
// untouched in the stored document.
type UpdateMenuItemRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image" validate:"omitempty,url"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
}
