package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jihanchy/bistro-baron-server/models"
)

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type reviewStoreMongo struct {
	reviews *mongo.Collection
}

func NewReviewStoreMongo(reviews *mongo.Collection) ReviewStore {
	return &reviewStoreMongo{reviews: reviews}
}

func (s *reviewStoreMongo) List(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var all []models.Review
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}
