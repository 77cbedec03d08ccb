package service

import (
	"context"
	"sync"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// ProductList инкапсулирует каталог товаров: fetch state, delete and
// the search query with its derived filtered list.
type ProductList struct {
	*List[domain.Product]
	api apiclient.ProductAPI

	mu       sync.RWMutex
	query    string
	all      []domain.Product
	filtered []domain.Product
}

// NewProductList covers the whole catalog.
func NewProductList(api apiclient.ProductAPI) *ProductList {
	return newProductList(api, "products", api.ListProducts)
}

// NewCategoryProductList covers the products of one category.
func NewCategoryProductList(api apiclient.ProductAPI, categoryID int64) *ProductList {
	return newProductList(api, "category products", func(ctx context.Context) ([]domain.Product, error) {
		return api.ListProductsByCategory(ctx, categoryID)
	})
}

func newProductList(api apiclient.ProductAPI, what string, fetch func(context.Context) ([]domain.Product, error)) *ProductList {
	pl := &ProductList{api: api}
	pl.List = NewList(what, func(ctx context.Context) ([]domain.Product, error) {
		products, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		pl.mu.Lock()
		pl.all = products
		pl.filtered = FilterByName(products, pl.query)
		pl.mu.Unlock()
		return products, nil
	})
	return pl
}

// Delete removes a product remotely, then refetches the catalog.
func (pl *ProductList) Delete(ctx context.Context, id int64) state.State[[]domain.Product] {
	return pl.remove(ctx, func(ctx context.Context) error {
		return pl.api.DeleteProduct(ctx, id)
	})
}

// SetQuery stores q and recomputes the filtered list from the last fetched catalog.
func (pl *ProductList) SetQuery(q string) []domain.Product {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.query = q
	pl.filtered = FilterByName(pl.all, q)
	return copyProducts(pl.filtered)
}

func (pl *ProductList) Query() string {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return pl.query
}

func (pl *ProductList) Filtered() []domain.Product {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return copyProducts(pl.filtered)
}

// Find looks up a product in the last fetched catalog.
func (pl *ProductList) Find(id int64) (domain.Product, bool) {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	for _, p := range pl.all {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FilterByName keeps products whose name contains q, ignoring case.
// An empty query returns every product in its original order.
func FilterByName(products []domain.Product, q string) []domain.Product {
	if q == "" {
		return copyProducts(products)
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if domain.ContainsIgnoreCase(p.Name, q) {
			out = append(out, p)
		}
	}
	return out
}

func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}
