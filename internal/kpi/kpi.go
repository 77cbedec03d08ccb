// Package kpi reduces order history and catalog data into the admin reports.
package kpi

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	WeekDays  = 7
	MonthDays = 30

	// LowStockThreshold products with stock below this are reported.
	LowStockThreshold = 10
	// CriticalStockThreshold products with stock below this are critical.
	CriticalStockThreshold = 5
)

// Cutoff returns today minus windowDays as yyyy-MM-dd in today's location.
func Cutoff(today time.Time, windowDays int) string {
	return today.AddDate(0, 0, -windowDays).Format(dateLayout)
}

// SumSalesInWindow sums order totals whose date prefix is lexicographically
// >= the cutoff. Orders without a usable yyyy-MM-dd prefix are skipped.
// Timestamps must be zero-padded ISO dates in one timezone for this to hold.
func SumSalesInWindow(orders []domain.Order, windowDays int, today time.Time) float64 {
	cutoff := Cutoff(today, windowDays)
	sum := decimal.Zero
	for _, o := range orders {
		day, ok := o.DatePrefix()
		if !ok {
			continue
		}
		if day >= cutoff {
			sum = sum.Add(decimal.NewFromFloat(o.TotalOrZero()))
		}
	}
	return sum.InexactFloat64()
}

// Summary KPI панели администратора
type Summary struct {
	WeeklySales  float64 `json:"weekly_sales"`
	MonthlySales float64 `json:"monthly_sales"`
}

func Summarize(orders []domain.Order, today time.Time) Summary {
	return Summary{
		WeeklySales:  SumSalesInWindow(orders, WeekDays, today),
		MonthlySales: SumSalesInWindow(orders, MonthDays, today),
	}
}

// SortByDateDesc orders history newest first by comparing date strings.
// Orders without a date go last. The input is not modified.
func SortByDateDesc(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return dateOrEmpty(out[i]) > dateOrEmpty(out[j])
	})
	return out
}

func dateOrEmpty(o domain.Order) string {
	if o.Date == nil {
		return ""
	}
	return *o.Date
}

// StockItem строка отчёта о низком остатке
type StockItem struct {
	Product  domain.Product `json:"product"`
	Critical bool           `json:"critical"`
}

// LowStock keeps products with stock below threshold, preserving order.
func LowStock(products []domain.Product, threshold int64) []StockItem {
	out := make([]StockItem, 0)
	for _, p := range products {
		if p.Stock < threshold {
			out = append(out, StockItem{Product: p, Critical: p.Stock < CriticalStockThreshold})
		}
	}
	return out
}

// CategoryCount строка отчёта "инвентарь по категориям"
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Products int             `json:"products"`
}

// InventoryByCategory counts products per category, in category order.
// Products without a category are counted in the returned uncategorized total.
func InventoryByCategory(products []domain.Product, categories []domain.Category) ([]CategoryCount, int) {
	counts := make(map[int64]int)
	uncategorized := 0
	for _, p := range products {
		if p.Category == nil {
			uncategorized++
			continue
		}
		counts[p.Category.ID]++
	}
	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryCount{Category: c, Products: counts[c.ID]})
	}
	return out, uncategorized
}
