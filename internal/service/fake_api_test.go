package service

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
)

var errNetwork = errors.New("dial tcp: connection refused")

// fakeAPI in-memory stand-in for the remote API
type fakeAPI struct {
	mu sync.Mutex

	products   []domain.Product
	categories []domain.Category
	users      []domain.User
	orders     []domain.Order
	lowStock   []domain.Product

	orderReqs []domain.OrderRequest
	calls     map[string]int

	// failures keyed by method name
	fail map[string]error
}

var _ apiclient.API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int), fail: make(map[string]error)}
}

func (f *fakeAPI) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.fail[name]
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func statusErr(op string, code int) error {
	return &apiclient.StatusError{Op: op, StatusCode: code}
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*domain.User, error) {
	if err := f.hit("Login"); err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if u.Email == email && u.Password == password {
			cp := u
			return &cp, nil
		}
	}
	return nil, statusErr("login", 401)
}

func (f *fakeAPI) ListProducts(context.Context) ([]domain.Product, error) {
	if err := f.hit("ListProducts"); err != nil {
		return nil, err
	}
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	if err := f.hit("GetProduct"); err != nil {
		return nil, err
	}
	for _, p := range f.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, statusErr("get product", 404)
}

func (f *fakeAPI) ListProductsByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	if err := f.hit("ListProductsByCategory"); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range f.products {
		if p.Category != nil && p.Category.ID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	if err := f.hit("CreateProduct"); err != nil {
		return nil, err
	}
	p.ID = int64(len(f.products) + 100)
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	if err := f.hit("UpdateProduct"); err != nil {
		return nil, err
	}
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = p
			return &p, nil
		}
	}
	return nil, statusErr("update product", 404)
}

func (f *fakeAPI) DeleteProduct(_ context.Context, id int64) error {
	if err := f.hit("DeleteProduct"); err != nil {
		return err
	}
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return statusErr("delete product", 404)
}

func (f *fakeAPI) ListCategories(context.Context) ([]domain.Category, error) {
	if err := f.hit("ListCategories"); err != nil {
		return nil, err
	}
	return append([]domain.Category(nil), f.categories...), nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	if err := f.hit("CreateCategory"); err != nil {
		return nil, err
	}
	c.ID = int64(len(f.categories) + 1)
	f.categories = append(f.categories, c)
	return &c, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	if err := f.hit("UpdateCategory"); err != nil {
		return nil, err
	}
	for i := range f.categories {
		if f.categories[i].ID == c.ID {
			f.categories[i] = c
			return &c, nil
		}
	}
	return nil, statusErr("update category", 404)
}

func (f *fakeAPI) DeleteCategory(_ context.Context, id int64) error {
	if err := f.hit("DeleteCategory"); err != nil {
		return err
	}
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return statusErr("delete category", 404)
}

func (f *fakeAPI) ListUsers(context.Context) ([]domain.User, error) {
	if err := f.hit("ListUsers"); err != nil {
		return nil, err
	}
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeAPI) GetUser(_ context.Context, id int64) (*domain.User, error) {
	if err := f.hit("GetUser"); err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, statusErr("get user", 404)
}

func (f *fakeAPI) CreateUser(_ context.Context, u domain.User) (*domain.User, error) {
	if err := f.hit("CreateUser"); err != nil {
		return nil, err
	}
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, u domain.User) (*domain.User, error) {
	if err := f.hit("UpdateUser"); err != nil {
		return nil, err
	}
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = u
			return &u, nil
		}
	}
	return nil, statusErr("update user", 404)
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int64) error {
	if err := f.hit("DeleteUser"); err != nil {
		return err
	}
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return statusErr("delete user", 404)
}

func (f *fakeAPI) ListOrders(context.Context) ([]domain.Order, error) {
	if err := f.hit("ListOrders"); err != nil {
		return nil, err
	}
	return append([]domain.Order(nil), f.orders...), nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, req domain.OrderRequest) error {
	if err := f.hit("CreateOrder"); err != nil {
		return err
	}
	f.mu.Lock()
	f.orderReqs = append(f.orderReqs, req)
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) ListLowStockProducts(context.Context) ([]domain.Product, error) {
	if err := f.hit("ListLowStockProducts"); err != nil {
		return nil, err
	}
	return f.lowStock, nil
}

func (f *fakeAPI) ListTopSellingProducts(context.Context) ([]domain.Product, error) {
	if err := f.hit("ListTopSellingProducts"); err != nil {
		return nil, err
	}
	return nil, nil
}
