package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Jihanchy/bistro-baron-server/models"
)

// seedPayments records two payments through the API: one buying a pizza and a
// salad, one buying two pizzas. Hand-computed totals: pizza {quantity 3,
// revenue 36.0}, salad {quantity 1, revenue 11.5}.
func seedPayments(t *testing.T, ts *testServer) {
	t.Helper()

	pizza := ts.seedMenuItem(t, "Margherita", "pizza", 12.0)
	salad := ts.seedMenuItem(t, "Tuna Niçoise", "salad", 11.5)

	row1 := ts.seedCartItem(t, "diner@example.com", pizza)
	row2 := ts.seedCartItem(t, "diner@example.com", salad)
	row3 := ts.seedCartItem(t, "other@example.com", pizza)
	row4 := ts.seedCartItem(t, "other@example.com", pizza)

	first := models.RecordPaymentRequest{
		Email:         "diner@example.com",
		Price:         23.5,
		TransactionID: "pi_stats_1",
		CartIDs:       []string{row1.ID.Hex(), row2.ID.Hex()},
		MenuItemIDs:   []string{pizza.ID.Hex(), salad.ID.Hex()},
	}
	second := models.RecordPaymentRequest{
		Email:         "other@example.com",
		Price:         24.0,
		TransactionID: "pi_stats_2",
		CartIDs:       []string{row3.ID.Hex(), row4.ID.Hex()},
		MenuItemIDs:   []string{pizza.ID.Hex(), pizza.ID.Hex()},
	}
	for _, req := range []models.RecordPaymentRequest{first, second} {
		if w := ts.do(t, http.MethodPost, "/payment", "", req); w.Code != http.StatusOK {
			t.Fatalf("seed payment status = %d, want 200", w.Code)
		}
	}
}

func TestOrderStats(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	seedPayments(t, ts)

	w := ts.do(t, http.MethodGet, "/order-stats", ts.tokenFor(t, "boss@example.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var rows []models.CategorySales
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("failed to decode order stats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	byCategory := make(map[string]models.CategorySales, len(rows))
	for _, row := range rows {
		byCategory[row.Category] = row
	}

	pizza := byCategory["pizza"]
	if pizza.Quantity != 3 || pizza.Revenue != 36.0 {
		t.Errorf("pizza = {quantity %d, revenue %v}, want {3, 36}", pizza.Quantity, pizza.Revenue)
	}
	salad := byCategory["salad"]
	if salad.Quantity != 1 || salad.Revenue != 11.5 {
		t.Errorf("salad = {quantity %d, revenue %v}, want {1, 11.5}", salad.Quantity, salad.Revenue)
	}
}

func TestAdminStats(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	ts.seedUser(t, "diner@example.com", models.RoleRegular)
	seedPayments(t, ts)

	w := ts.do(t, http.MethodGet, "/admin-stats", ts.tokenFor(t, "boss@example.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var stats models.AdminStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode admin stats: %v", err)
	}
	if stats.Users != 2 {
		t.Errorf("users = %d, want 2", stats.Users)
	}
	if stats.MenuItems != 2 {
		t.Errorf("menuItems = %d, want 2", stats.MenuItems)
	}
	if stats.Orders != 2 {
		t.Errorf("orders = %d, want 2", stats.Orders)
	}
	if stats.Revenue != 47.5 {
		t.Errorf("revenue = %v, want 47.5", stats.Revenue)
	}
}

func TestStats_AdminOnly(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "diner@example.com", models.RoleRegular)
	dinerToken := ts.tokenFor(t, "diner@example.com")

	for _, path := range []string{"/admin-stats", "/order-stats"} {
		if w := ts.do(t, http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("%s no token: status = %d, want 401", path, w.Code)
		}
		if w := ts.do(t, http.MethodGet, path, dinerToken, nil); w.Code != http.StatusForbidden {
			t.Errorf("%s regular token: status = %d, want 403", path, w.Code)
		}
	}
}
