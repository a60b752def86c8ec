package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jihanchy/bistro-baron-server/models"
)

// In-memory implementations of the store interfaces. The handler and
// middleware tests run against these instead of a live MongoDB; they fabricate
// the same driver result shapes the Mongo stores return.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email != nil && *s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Create(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (s *MemoryUserStore) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == oid {
			modified := int64(0)
			if s.users[i].Role != models.RoleAdmin {
				s.users[i].Role = models.RoleAdmin
				modified = 1
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (s *MemoryUserStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == oid {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (s *MemoryUserStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

type MemoryMenuStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMemoryMenuStore() *MemoryMenuStore {
	return &MemoryMenuStore{}
}

func (s *MemoryMenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryMenuStore) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == oid {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryMenuStore) Create(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items = append(s.items, item)
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (s *MemoryMenuStore) Update(ctx context.Context, id string, req models.UpdateMenuItemRequest) (*mongo.UpdateResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != oid {
			continue
		}
		if req.Name != nil {
			s.items[i].Name = req.Name
		}
		if req.Recipe != nil {
			s.items[i].Recipe = req.Recipe
		}
		if req.Image != nil {
			s.items[i].Image = req.Image
		}
		if req.Category != nil {
			s.items[i].Category = req.Category
		}
		if req.Price != nil {
			s.items[i].Price = req.Price
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (s *MemoryMenuStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == oid {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (s *MemoryMenuStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

type MemoryReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{}
}

func (s *MemoryReviewStore) Seed(reviews ...models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, reviews...)
}

func (s *MemoryReviewStore) List(ctx context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

type MemoryCartStore struct {
	mu    sync.RWMutex
	items []models.CartItem
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{}
}

func (s *MemoryCartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CartItem
	for i := range s.items {
		if s.items[i].Email != nil && *s.items[i].Email == email {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

func (s *MemoryCartStore) Add(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items = append(s.items, item)
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == oid {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (s *MemoryCartStore) deleteSet(ids []primitive.ObjectID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var kept []models.CartItem
	var deleted int64
	for i := range s.items {
		if wanted[s.items[i].ID] {
			deleted++
			continue
		}
		kept = append(kept, s.items[i])
	}
	s.items = kept
	return deleted
}

// MemoryPaymentStore keeps references to the menu and cart stores so Record
// can purge cart rows and OrderStats can join against the catalog, mirroring
// what the Mongo pipeline does with $lookup.
type MemoryPaymentStore struct {
	mu       sync.RWMutex
	payments []models.Payment
	menus    *MemoryMenuStore
	carts    *MemoryCartStore
}

func NewMemoryPaymentStore(menus *MemoryMenuStore, carts *MemoryCartStore) *MemoryPaymentStore {
	return &MemoryPaymentStore{menus: menus, carts: carts}
}

func (s *MemoryPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Payment
	for i := range s.payments {
		if s.payments[i].Email != nil && *s.payments[i].Email == email {
			out = append(out, s.payments[i])
		}
	}
	return out, nil
}

func (s *MemoryPaymentStore) Record(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, *mongo.DeleteResult, error) {
	s.mu.Lock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.payments = append(s.payments, payment)
	s.mu.Unlock()

	deleted := s.carts.deleteSet(payment.CartIDs)
	return &mongo.InsertOneResult{InsertedID: payment.ID},
		&mongo.DeleteResult{DeletedCount: deleted}, nil
}

func (s *MemoryPaymentStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.payments)), nil
}

func (s *MemoryPaymentStore) TotalRevenue(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for i := range s.payments {
		if s.payments[i].Price != nil {
			total += *s.payments[i].Price
		}
	}
	return total, nil
}

func (s *MemoryPaymentStore) OrderStats(ctx context.Context) ([]models.CategorySales, error) {
	menuItems, err := s.menus.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := make(map[string]*models.CategorySales)
	var order []string
	for i := range s.payments {
		for _, id := range s.payments[i].MenuItemIDs {
			item, ok := byID[id]
			if !ok || item.Category == nil {
				continue
			}
			row, ok := totals[*item.Category]
			if !ok {
				row = &models.CategorySales{Category: *item.Category}
				totals[*item.Category] = row
				order = append(order, *item.Category)
			}
			row.Quantity++
			if item.Price != nil {
				row.Revenue += *item.Price
			}
		}
	}

	out := make([]models.CategorySales, 0, len(order))
	for _, category := range order {
		out = append(out, *totals[category])
	}
	return out, nil
}
