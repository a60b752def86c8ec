package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jihanchy/bistro-baron-server/models"
)

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type userStoreMongo struct {
	users *mongo.Collection
}

func NewUserStoreMongo(users *mongo.Collection) UserStore {
	return &userStoreMongo{users: users}
}

func (s *userStoreMongo) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var all []models.User
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *userStoreMongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStoreMongo) Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.users.InsertOne(ctx, user)
}

func (s *userStoreMongo) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.RoleAdmin}}}},
	)
}

func (s *userStoreMongo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.users.DeleteOne(ctx, bson.M{"_id": oid})
}

func (s *userStoreMongo) Count(ctx context.Context) (int64, error) {
	return s.users.EstimatedDocumentCount(ctx)
}
