package service

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// ProductEditor форма создания/редактирования товара
type ProductEditor struct {
	products   apiclient.ProductAPI
	categories apiclient.CategoryAPI
	cell       *state.Cell[state.State[domain.Product]]

	mu      sync.RWMutex
	current *domain.Product
	choices []domain.Category
}

func NewProductEditor(products apiclient.ProductAPI, categories apiclient.CategoryAPI) *ProductEditor {
	return &ProductEditor{
		products:   products,
		categories: categories,
		cell:       state.NewCell(state.Idle[domain.Product]()),
	}
}

func (e *ProductEditor) State() state.State[domain.Product] { return e.cell.Get() }

func (e *ProductEditor) Current() *domain.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Categories are the choices offered by the form.
func (e *ProductEditor) Categories() []domain.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.Category, len(e.choices))
	copy(out, e.choices)
	return out
}

// LoadCategories only touches the form state when it fails.
func (e *ProductEditor) LoadCategories(ctx context.Context) error {
	list, err := e.categories.ListCategories(ctx)
	if err != nil {
		e.cell.Set(remoteFailure[domain.Product]("error loading categories", err))
		return err
	}
	e.mu.Lock()
	e.choices = list
	e.mu.Unlock()
	return nil
}

// Load fetches the product for editing. The returned product is a copy
// owned by the caller, independent of later Reset calls.
func (e *ProductEditor) Load(ctx context.Context, id int64) (*domain.Product, state.State[domain.Product]) {
	if id <= 0 {
		return nil, e.set(invalidInput[domain.Product]("product id must be positive"))
	}
	e.cell.Set(state.Loading[domain.Product]())
	p, err := e.products.GetProduct(ctx, id)
	if err != nil {
		return nil, e.set(remoteFailure[domain.Product]("error loading product", err))
	}
	e.mu.Lock()
	e.current = p
	e.mu.Unlock()
	loaded := *p
	return &loaded, e.set(state.Idle[domain.Product]())
}

// Save creates the product when ID is 0 and updates it otherwise.
func (e *ProductEditor) Save(ctx context.Context, p domain.Product) state.State[domain.Product] {
	if p.ID < 0 || strings.TrimSpace(p.Name) == "" || p.Price < 0 || p.Stock < 0 {
		return e.set(invalidInput[domain.Product]("name is required, price and stock must not be negative"))
	}
	e.cell.Set(state.Loading[domain.Product]())
	var (
		saved *domain.Product
		err   error
	)
	if p.ID == 0 {
		saved, err = e.products.CreateProduct(ctx, p)
	} else {
		saved, err = e.products.UpdateProduct(ctx, p)
	}
	if err != nil {
		return e.set(remoteFailure[domain.Product]("error saving product", err))
	}
	return e.set(state.Success(*saved))
}

func (e *ProductEditor) Reset() {
	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()
	e.cell.Set(state.Idle[domain.Product]())
}

func (e *ProductEditor) set(s state.State[domain.Product]) state.State[domain.Product] {
	e.cell.Set(s)
	return s
}
