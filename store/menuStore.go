package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jihanchy/bistro-baron-server/models"
)

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id string, req models.UpdateMenuItemRequest) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type menuStoreMongo struct {
	menus *mongo.Collection
}

func NewMenuStoreMongo(menus *mongo.Collection) MenuStore {
	return &menuStoreMongo{menus: menus}
}

func (s *menuStoreMongo) List(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.menus.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var all []models.MenuItem
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *menuStoreMongo) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	var item models.MenuItem
	err = s.menus.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *menuStoreMongo) Create(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	return s.menus.InsertOne(ctx, item)
}

func (s *menuStoreMongo) Update(ctx context.Context, id string, req models.UpdateMenuItemRequest) (*mongo.UpdateResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	var updateObj primitive.D
	if req.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *req.Name})
	}
	if req.Recipe != nil {
		updateObj = append(updateObj, bson.E{Key: "recipe", Value: *req.Recipe})
	}
	if req.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: *req.Image})
	}
	if req.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *req.Category})
	}
	if req.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *req.Price})
	}
	if len(updateObj) == 0 {
		return &mongo.UpdateResult{}, nil
	}

	return s.menus.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: updateObj}},
	)
}

func (s *menuStoreMongo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.menus.DeleteOne(ctx, bson.M{"_id": oid})
}

func (s *menuStoreMongo) Count(ctx context.Context) (int64, error) {
	return s.menus.EstimatedDocumentCount(ctx)
}
