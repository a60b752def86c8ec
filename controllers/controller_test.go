package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jihanchy/bistro-baron-server/controllers"
	"github.com/Jihanchy/bistro-baron-server/helpers"
	"github.com/Jihanchy/bistro-baron-server/middleware"
	"github.com/Jihanchy/bistro-baron-server/models"
	"github.com/Jihanchy/bistro-baron-server/routes"
	"github.com/Jihanchy/bistro-baron-server/store"
)

// fakeGateway stands in for Stripe and records the amount it was asked for.
type fakeGateway struct {
	clientSecret string
	lastAmount   int64
	err          error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	g.lastAmount = amount
	if g.err != nil {
		return "", g.err
	}
	return g.clientSecret, nil
}

// testServer wires the real routers and middleware over in-memory stores.
type testServer struct {
	router   *gin.Engine
	users    *store.MemoryUserStore
	menus    *store.MemoryMenuStore
	reviews  *store.MemoryReviewStore
	carts    *store.MemoryCartStore
	payments *store.MemoryPaymentStore
	tokens   *helpers.TokenHelper
	gateway  *fakeGateway
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		users:   store.NewMemoryUserStore(),
		menus:   store.NewMemoryMenuStore(),
		reviews: store.NewMemoryReviewStore(),
		carts:   store.NewMemoryCartStore(),
		tokens:  helpers.NewTokenHelper("test-secret"),
		gateway: &fakeGateway{clientSecret: "cs_test_secret"},
	}
	ts.payments = store.NewMemoryPaymentStore(ts.menus, ts.carts)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := middleware.Authentication(ts.tokens)
	admin := middleware.VerifyAdmin(ts.users)

	router := gin.New()
	routes.UserRoutes(router, controllers.NewUserController(ts.users, ts.tokens), auth, admin)
	routes.MenuRoutes(router, controllers.NewMenuController(ts.menus), auth, admin)
	routes.ReviewRoutes(router, controllers.NewReviewController(ts.reviews))
	routes.CartRoutes(router, controllers.NewCartController(ts.carts))
	routes.PaymentRoutes(router, controllers.NewPaymentController(ts.payments, ts.gateway, logger), auth)
	routes.StatsRoutes(router, controllers.NewStatsController(ts.users, ts.menus, ts.payments), auth, admin)

	ts.router = router
	return ts
}

// do performs a request against the wired router. An empty token leaves the
// Authorization header off entirely.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := ts.tokens.GenerateToken(email, "Test User")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func (ts *testServer) seedUser(t *testing.T, email, role string) models.User {
	t.Helper()
	name := "Test User"
	user := models.User{Name: &name, Email: &email, Role: role}
	result, err := ts.users.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user
}

func (ts *testServer) seedMenuItem(t *testing.T, name, category string, price float64) models.MenuItem {
	t.Helper()
	recipe := "house recipe"
	image := "https://example.com/" + name + ".jpg"
	item := models.MenuItem{Name: &name, Recipe: &recipe, Image: &image, Category: &category, Price: &price}
	result, err := ts.menus.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return item
}

func (ts *testServer) seedCartItem(t *testing.T, email string, menuItem models.MenuItem) models.CartItem {
	t.Helper()
	item := models.CartItem{
		Email:      &email,
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Image:      menuItem.Image,
		Price:      menuItem.Price,
	}
	result, err := ts.carts.Add(context.Background(), item)
	if err != nil {
		t.Fatalf("failed to seed cart item: %v", err)
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return item
}
