package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

// User is an account record in the 'users' collection. Accounts are keyed by
// email; the only mutation after signup is a role promotion.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email *string            `bson:"email" json:"email" validate:"required,email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// TokenRequest is the identity payload of POST /jwt.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}
