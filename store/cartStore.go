package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jihanchy/bistro-baron-server/models"
)

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Add(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type cartStoreMongo struct {
	carts *mongo.Collection
}

func NewCartStoreMongo(carts *mongo.Collection) CartStore {
	return &cartStoreMongo{carts: carts}
}

func (s *cartStoreMongo) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var all []models.CartItem
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *cartStoreMongo) Add(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	return s.carts.InsertOne(ctx, item)
}

func (s *cartStoreMongo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.carts.DeleteOne(ctx, bson.M{"_id": oid})
}
