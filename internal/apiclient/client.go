package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"storefront/internal/domain"
)

const (
	pathLogin            = "/api/usuarios/login"
	pathUsers            = "/api/usuarios"
	pathUser             = "/api/usuarios/{id}"
	pathProducts         = "/api/productos"
	pathProduct          = "/api/productos/{id}"
	pathProductsCategory = "/api/productos/categoria/{id}"
	pathLowStock         = "/api/productos/low-stock"
	pathTopSelling       = "/api/productos/top-selling"
	pathCategories       = "/api/categorias"
	pathCategory         = "/api/categorias/{id}"
	pathOrders           = "/api/boletas"
)

// Config параметры клиента
type Config struct {
	BaseURL string
	// Timeout 0 keeps the transport default.
	Timeout time.Duration
	Debug   bool
	// Transport overrides the base round tripper; it is still wrapped for tracing.
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client HTTP-клиент API магазина
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

var _ API = (*Client)(nil)

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTransport(otelhttp.NewTransport(base)).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetLogger(restyLogger{logger}).
		SetDebug(cfg.Debug)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	return &Client{http: rc, logger: logger}
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, "login", http.MethodPost, pathLogin, nil, domain.LoginRequest{Email: email, Password: password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, "list users", http.MethodGet, pathUsers, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, "get user", http.MethodGet, pathUser, idParam(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	return write(ctx, c, "create user", http.MethodPost, pathUsers, nil, u)
}

func (c *Client) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	return write(ctx, c, "update user", http.MethodPut, pathUser, idParam(u.ID), u)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, "delete user", http.MethodDelete, pathUser, idParam(id), nil, nil)
}

// Products

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return c.listProducts(ctx, "list products", pathProducts, nil)
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, "get product", http.MethodGet, pathProduct, idParam(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return c.listProducts(ctx, "list products by category", pathProductsCategory, idParam(categoryID))
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return write(ctx, c, "create product", http.MethodPost, pathProducts, nil, p)
}

func (c *Client) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return write(ctx, c, "update product", http.MethodPut, pathProduct, idParam(p.ID), p)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, "delete product", http.MethodDelete, pathProduct, idParam(id), nil, nil)
}

// Reports

func (c *Client) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return c.listProducts(ctx, "low stock report", pathLowStock, nil)
}

func (c *Client) ListTopSellingProducts(ctx context.Context) ([]domain.Product, error) {
	return c.listProducts(ctx, "top selling report", pathTopSelling, nil)
}

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, "list categories", http.MethodGet, pathCategories, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	return write(ctx, c, "create category", http.MethodPost, pathCategories, nil, cat)
}

func (c *Client) UpdateCategory(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	return write(ctx, c, "update category", http.MethodPut, pathCategory, idParam(cat.ID), cat)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, "delete category", http.MethodDelete, pathCategory, idParam(id), nil, nil)
}

// Orders

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, "list orders", http.MethodGet, pathOrders, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder submits the order. The response body is ignored and there is no idempotency key.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) error {
	return c.do(ctx, "create order", http.MethodPost, pathOrders, nil, req, nil)
}

func (c *Client) listProducts(ctx context.Context, op, path string, params map[string]string) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, op, http.MethodGet, path, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do issues one request. When out is non-nil a 2xx response must carry a JSON body.
func (c *Client) do(ctx context.Context, op, method, path string, params map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetPathParams(params)
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug("api request failed", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsSuccess() {
		c.logger.Debug("api request rejected", "op", op, "status", resp.StatusCode())
		return &StatusError{Op: op, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	if out == nil {
		return nil
	}
	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("%s: %w", op, ErrEmptyBody)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// write sends v and returns the entity echoed by the server.
// A 2xx without a body means the write was applied as sent.
func write[T any](ctx context.Context, c *Client, op, method, path string, params map[string]string, v T) (*T, error) {
	var out T
	if err := c.do(ctx, op, method, path, params, v, &out); err != nil {
		if errors.Is(err, ErrEmptyBody) {
			return &v, nil
		}
		return nil, err
	}
	return &out, nil
}

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

// restyLogger routes resty's own logging into slog
type restyLogger struct{ l *slog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
