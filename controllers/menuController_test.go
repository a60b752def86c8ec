package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Jihanchy/bistro-baron-server/models"
)

func TestMenuCreateAndList(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	bossToken := ts.tokenFor(t, "boss@example.com")

	req := models.CreateMenuItemRequest{
		Name:     "Roast Duck Breast",
		Recipe:   "slow roasted with cherry glaze",
		Image:    "https://example.com/roast-duck.jpg",
		Category: "offered",
		Price:    14.5,
	}

	w := ts.do(t, http.MethodPost, "/menu", bossToken, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200", w.Code)
	}

	w = ts.do(t, http.MethodGet, "/menus", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}
	var items []models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode menu list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if *items[0].Name != req.Name {
		t.Errorf("name = %q, want %q", *items[0].Name, req.Name)
	}
}

func TestMenuCreate_AuthLadder(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "diner@example.com", models.RoleRegular)

	req := models.CreateMenuItemRequest{
		Name:     "Escalope de Veau",
		Recipe:   "pan fried with lemon butter",
		Image:    "https://example.com/escalope.jpg",
		Category: "salad",
		Price:    12.5,
	}

	if w := ts.do(t, http.MethodPost, "/menu", "", req); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := ts.do(t, http.MethodPost, "/menu", ts.tokenFor(t, "diner@example.com"), req); w.Code != http.StatusForbidden {
		t.Errorf("regular token: status = %d, want 403", w.Code)
	}
}

func TestMenuCreate_RejectsInvalidBody(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	bossToken := ts.tokenFor(t, "boss@example.com")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"recipe": "r", "image": "https://example.com/x.jpg", "category": "soup", "price": 9.0}},
		{"zero price", map[string]interface{}{"name": "Soup", "recipe": "r", "image": "https://example.com/x.jpg", "category": "soup", "price": 0}},
		{"bad image url", map[string]interface{}{"name": "Soup", "recipe": "r", "image": "nope", "category": "soup", "price": 9.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := ts.do(t, http.MethodPost, "/menu", bossToken, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestMenuGet(t *testing.T) {
	ts := newTestServer(t)
	item := ts.seedMenuItem(t, "Tuna Niçoise", "salad", 11.5)

	w := ts.do(t, http.MethodGet, "/menu/"+item.ID.Hex(), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode menu item: %v", err)
	}
	if got.ID != item.ID {
		t.Errorf("id = %s, want %s", got.ID.Hex(), item.ID.Hex())
	}

	if w := ts.do(t, http.MethodGet, "/menu/64f000000000000000000000", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestMenuUpdate_PartialFields(t *testing.T) {
	ts := newTestServer(t)
	item := ts.seedMenuItem(t, "Fish Parmentier", "pizza", 12.5)

	newName := "Fish Parmentier Deluxe"
	newPrice := 15.0
	w := ts.do(t, http.MethodPatch, "/menu/"+item.ID.Hex(), "", models.UpdateMenuItemRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200", w.Code)
	}

	w = ts.do(t, http.MethodGet, "/menu/"+item.ID.Hex(), "", nil)
	var got models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode menu item: %v", err)
	}
	if *got.Name != newName {
		t.Errorf("name = %q, want %q", *got.Name, newName)
	}
	if *got.Price != newPrice {
		t.Errorf("price = %v, want %v", *got.Price, newPrice)
	}
	// untouched fields survive
	if *got.Category != "pizza" {
		t.Errorf("category = %q, want %q", *got.Category, "pizza")
	}
	if *got.Recipe != *item.Recipe {
		t.Errorf("recipe = %q, want %q", *got.Recipe, *item.Recipe)
	}
}

func TestMenuDelete(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	item := ts.seedMenuItem(t, "Chicken Forestière", "dessert", 10.0)

	if w := ts.do(t, http.MethodDelete, "/menu/"+item.ID.Hex(), "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	bossToken := ts.tokenFor(t, "boss@example.com")
	w := ts.do(t, http.MethodDelete, "/menu/"+item.ID.Hex(), bossToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}

	if w := ts.do(t, http.MethodGet, "/menu/"+item.ID.Hex(), "", nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted item still found: status = %d, want 404", w.Code)
	}
}
