// Package store holds one small store per collection. Handlers depend on the
// interfaces; main wires the Mongo implementations, tests wire the in-memory
// ones.
package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no document. The Mongo
// implementations map mongo.ErrNoDocuments to it so handlers never see
// driver errors.
var ErrNotFound = errors.New("document not found")

func toObjectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
