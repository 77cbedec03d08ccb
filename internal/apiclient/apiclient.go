// Package apiclient is the client of the remote shop API (users, products,
// categories, orders and server-side reports) over HTTP+JSON.
package apiclient

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
)

// ErrEmptyBody возвращается, когда успешный ответ пришёл без тела
var ErrEmptyBody = errors.New("empty response body")

// StatusError non-2xx ответ API
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// StatusCode extracts the HTTP status from err, if it carries one.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}

// IsStatus reports whether err is a non-2xx response rather than a transport failure.
func IsStatus(err error) bool {
	_, ok := StatusCode(err)
	return ok
}

// AuthAPI login
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// ProductAPI CRUD товаров
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CategoryAPI CRUD категорий
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// UserAPI CRUD пользователей
type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, u domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// OrderAPI заказы (boletas)
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, req domain.OrderRequest) error
}

// ReportAPI server-computed reports
type ReportAPI interface {
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
	ListTopSellingProducts(ctx context.Context) ([]domain.Product, error)
}

// API everything the storefront consumes
type API interface {
	AuthAPI
	ProductAPI
	CategoryAPI
	UserAPI
	OrderAPI
	ReportAPI
}
