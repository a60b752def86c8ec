package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jihanchy/bistro-baron-server/models"
)

type PaymentStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	// Record inserts the payment and deletes every cart row in its CartIDs
	// set as one transactional unit.
	Record(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, *mongo.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	OrderStats(ctx context.Context) ([]models.CategorySales, error)
}

type paymentStoreMongo struct {
	client   *mongo.Client
	payments *mongo.Collection
	carts    *mongo.Collection
}

func NewPaymentStoreMongo(client *mongo.Client, payments, carts *mongo.Collection) PaymentStore {
	return &paymentStoreMongo{client: client, payments: payments, carts: carts}
}

func (s *paymentStoreMongo) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var all []models.Payment
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// Record runs the insert and the cart purge inside one session transaction,
// so a crash between the two cannot leave a paid-for cart row behind.
func (s *paymentStoreMongo) Record(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, *mongo.DeleteResult, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, nil, err
	}
	defer session.EndSession(ctx)

	var insertResult *mongo.InsertOneResult
	var deleteResult *mongo.DeleteResult

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}
		insertResult = res

		del, err := s.carts.DeleteMany(sc, bson.M{"_id": bson.M{"$in": payment.CartIDs}})
		if err != nil {
			return nil, err
		}
		deleteResult = del
		return nil, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return insertResult, deleteResult, nil
}

func (s *paymentStoreMongo) Count(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}

func (s *paymentStoreMongo) TotalRevenue(ctx context.Context) (float64, error) {
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
	}}}

	cursor, err := s.payments.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		return 0, err
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

// OrderStats expands each payment's purchased menu-item ids, joins them
// against the menu catalog and groups the result by category.
func (s *paymentStoreMongo) OrderStats(ctx context.Context) ([]models.CategorySales, error) {
	unwindStage := bson.D{{Key: "$unwind", Value: "$menu_item_ids"}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "menus"},
		{Key: "localField", Value: "menu_item_ids"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "menu_items"},
	}}}
	unwindMenuStage := bson.D{{Key: "$unwind", Value: "$menu_items"}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$menu_items.category"},
		{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menu_items.price"}}},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "category", Value: "$_id"},
		{Key: "quantity", Value: "$quantity"},
		{Key: "revenue", Value: "$revenue"},
	}}}

	cursor, err := s.payments.Aggregate(ctx, mongo.Pipeline{
		unwindStage, lookupStage, unwindMenuStage, groupStage, projectStage,
	})
	if err != nil {
		return nil, err
	}
	var rows []models.CategorySales
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
