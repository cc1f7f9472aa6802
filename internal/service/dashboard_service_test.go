package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scenario: one store, one item (Widget, qty 3, price 9.99). The item is low
// stock, the store value is 29.97 and the dashboard reflects both.
func TestDashboard_WidgetScenario(t *testing.T) {
	storeRepo, _, inventoryRepo, invSvc := newTestInventoryService()
	dashSvc := NewDashboardService(storeRepo, inventoryRepo)

	owner := uuid.New()
	storeID := storeRepo.addStore(owner, "Main St")

	if _, err := invSvc.CreateItem(owner, widgetInput(storeID)); err != nil {
		t.Fatalf("setup create failed: %v", err)
	}

	summary, err := dashSvc.GetSummary(owner)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalQuantity != 3 {
		t.Errorf("expected total quantity 3, got %d", summary.TotalQuantity)
	}
	if !summary.TotalValue.Equal(decimal.RequireFromString("29.97")) {
		t.Errorf("expected total value 29.97, got %s", summary.TotalValue)
	}

	low, err := dashSvc.GetLowStock(owner)
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Widget" {
		t.Errorf("Widget (qty 3) should appear in the low-stock view, got %+v", low)
	}
}

// Scenario: Tools qty 3 and Parts qty 7 split the dashboard 30/70.
func TestDashboard_CategoryPercentages(t *testing.T) {
	storeRepo, _, inventoryRepo, invSvc := newTestInventoryService()
	dashSvc := NewDashboardService(storeRepo, inventoryRepo)

	owner := uuid.New()
	storeID := storeRepo.addStore(owner, "Main St")

	if _, err := invSvc.CreateItem(owner, widgetInput(storeID)); err != nil {
		t.Fatalf("setup create failed: %v", err)
	}
	parts := widgetInput(storeID)
	parts.Name = "Bolt"
	parts.Category = "Parts"
	parts.Quantity = 7
	parts.SKU = "B-1"
	if _, err := invSvc.CreateItem(owner, parts); err != nil {
		t.Fatalf("setup create failed: %v", err)
	}

	rollups, err := dashSvc.GetCategoryRollups(owner)
	if err != nil {
		t.Fatalf("category rollups failed: %v", err)
	}
	if len(rollups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(rollups))
	}
	if rollups[0].Category != "Parts" || rollups[0].Percentage != 70 {
		t.Errorf("expected Parts at 70%%, got %s at %d%%", rollups[0].Category, rollups[0].Percentage)
	}
	if rollups[1].Category != "Tools" || rollups[1].Percentage != 30 {
		t.Errorf("expected Tools at 30%%, got %s at %d%%", rollups[1].Category, rollups[1].Percentage)
	}
}

func TestDashboard_EmptyUser(t *testing.T) {
	storeRepo, _, inventoryRepo, _ := newTestInventoryService()
	dashSvc := NewDashboardService(storeRepo, inventoryRepo)

	summary, err := dashSvc.GetSummary(uuid.New())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalQuantity != 0 || summary.LowStockCount != 0 {
		t.Errorf("expected zero summary for a user with no stores: %+v", summary)
	}
	if inventoryRepo.findByStoresCalls != 0 {
		t.Errorf("no item query should run for a user with no stores")
	}
}
