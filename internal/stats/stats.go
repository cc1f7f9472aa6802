// Package stats derives dashboard views from an already-fetched inventory
// list. Everything here is pure: no persistence, no I/O, deterministic for a
// given input.
package stats

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Towaiji/InventoryPro/internal/model"
)

// LowStockThreshold is the fixed quantity below which an item counts as low
// stock.
const LowStockThreshold = 5

// Summary holds the global dashboard numbers.
type Summary struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	CategoryCount int             `json:"category_count"`
	LowStockCount int             `json:"low_stock_count"`
}

// StoreRollup aggregates one store's inventory.
type StoreRollup struct {
	StoreID        uuid.UUID       `json:"store_id"`
	Name           string          `json:"name"`
	TotalQuantity  int             `json:"total_quantity"`
	TotalValue     decimal.Decimal `json:"total_value"`
	UniqueProducts int             `json:"unique_products"`
}

// CategoryRollup aggregates one category group.
type CategoryRollup struct {
	Category      string          `json:"category"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Percentage    int             `json:"percentage"`
}

// TotalQuantity is the sum of quantities over all items.
func TotalQuantity(items []model.InventoryItemResponse) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalValue is the sum of price multiplied by quantity over all items.
func TotalValue(items []model.InventoryItemResponse) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// LowStock returns the items with quantity strictly below the threshold.
func LowStock(items []model.InventoryItemResponse) []model.InventoryItemResponse {
	low := make([]model.InventoryItemResponse, 0)
	for _, item := range items {
		if item.Quantity < LowStockThreshold {
			low = append(low, item)
		}
	}
	return low
}

// Summarize computes the global dashboard stats in one pass over the list.
func Summarize(items []model.InventoryItemResponse) Summary {
	categories := make(map[string]struct{})
	for _, item := range items {
		categories[item.Category] = struct{}{}
	}
	return Summary{
		TotalQuantity: TotalQuantity(items),
		TotalValue:    TotalValue(items),
		CategoryCount: len(categories),
		LowStockCount: len(LowStock(items)),
	}
}

// ByStore groups items by their owning store and applies the quantity/value
// reductions per group. Stores without items still appear, zeroed.
func ByStore(stores []model.Store, items []model.InventoryItemResponse) []StoreRollup {
	rollups := make([]StoreRollup, 0, len(stores))
	for _, store := range stores {
		rollup := StoreRollup{
			StoreID:    store.ID,
			Name:       store.Name,
			TotalValue: decimal.Zero,
		}
		for _, item := range items {
			if item.StoreID != store.ID {
				continue
			}
			rollup.TotalQuantity += item.Quantity
			rollup.TotalValue = rollup.TotalValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			rollup.UniqueProducts++
		}
		rollups = append(rollups, rollup)
	}
	return rollups
}

// ByCategory groups items by denormalized category name, computing each
// group's share of total quantity as a rounded percentage. The share is 0
// when the overall quantity is 0. Results are sorted by quantity descending.
func ByCategory(items []model.InventoryItemResponse) []CategoryRollup {
	overall := TotalQuantity(items)

	index := make(map[string]int)
	rollups := make([]CategoryRollup, 0)
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(rollups)
			index[item.Category] = pos
			rollups = append(rollups, CategoryRollup{Category: item.Category, TotalValue: decimal.Zero})
		}
		rollups[pos].TotalQuantity += item.Quantity
		rollups[pos].TotalValue = rollups[pos].TotalValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	for i := range rollups {
		if overall > 0 {
			rollups[i].Percentage = int(math.Round(100 * float64(rollups[i].TotalQuantity) / float64(overall)))
		}
	}

	sort.SliceStable(rollups, func(a, b int) bool {
		return rollups[a].TotalQuantity > rollups[b].TotalQuantity
	})
	return rollups
}
