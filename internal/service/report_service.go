package service

import (
	"context"
	"time"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/kpi"
	"storefront/internal/state"
)

// NewLowStockReport is the server-computed low stock report.
func NewLowStockReport(api apiclient.ReportAPI) *List[domain.Product] {
	return NewList("low stock report", api.ListLowStockProducts)
}

// NewTopSellingReport is the server-computed best sellers report.
func NewTopSellingReport(api apiclient.ReportAPI) *List[domain.Product] {
	return NewList("top selling report", api.ListTopSellingProducts)
}

// NewSalesHistory lists every order, newest first by date string.
func NewSalesHistory(api apiclient.OrderAPI) *List[domain.Order] {
	return NewList("sales history", func(ctx context.Context) ([]domain.Order, error) {
		orders, err := api.ListOrders(ctx)
		if err != nil {
			return nil, err
		}
		return kpi.SortByDateDesc(orders), nil
	})
}

// Dashboard KPI продаж за неделю и месяц
type Dashboard struct {
	api  apiclient.OrderAPI
	now  func() time.Time
	cell *state.Cell[state.State[kpi.Summary]]
}

// NewDashboard uses now to pick "today"; nil means time.Now in the local zone.
func NewDashboard(api apiclient.OrderAPI, now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	return &Dashboard{api: api, now: now, cell: state.NewCell(state.Loading[kpi.Summary]())}
}

func (d *Dashboard) State() state.State[kpi.Summary] { return d.cell.Get() }

func (d *Dashboard) Refresh(ctx context.Context) state.State[kpi.Summary] {
	d.cell.Set(state.Loading[kpi.Summary]())
	orders, err := d.api.ListOrders(ctx)
	var s state.State[kpi.Summary]
	if err != nil {
		s = remoteFailure[kpi.Summary]("error computing KPIs", err)
	} else {
		s = state.Success(kpi.Summarize(orders, d.now()))
	}
	d.cell.Set(s)
	return s
}

// Inventory отчёт "инвентарь по категориям", computed client-side
type Inventory struct {
	Categories    []kpi.CategoryCount `json:"categories"`
	Uncategorized int                 `json:"uncategorized"`
	LowStock      []kpi.StockItem     `json:"low_stock"`
}

// BuildInventory needs both the catalog and the categories to be loaded.
func BuildInventory(products state.State[[]domain.Product], categories state.State[[]domain.Category]) state.State[Inventory] {
	if products.IsError() {
		return state.Failure[Inventory](products.Err, products.Message)
	}
	if categories.IsError() {
		return state.Failure[Inventory](categories.Err, categories.Message)
	}
	ps, ok1 := products.Value()
	cs, ok2 := categories.Value()
	if !ok1 || !ok2 {
		return state.Loading[Inventory]()
	}
	counts, uncategorized := kpi.InventoryByCategory(ps, cs)
	return state.Success(Inventory{
		Categories:    counts,
		Uncategorized: uncategorized,
		LowStock:      kpi.LowStock(ps, kpi.LowStockThreshold),
	})
}
