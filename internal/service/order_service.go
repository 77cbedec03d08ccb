package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/apiclient"
	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// DefaultShippingOptions are offered when no shipping file is configured.
var DefaultShippingOptions = []domain.ShippingOption{
	{ID: "standard", Name: "Standard shipping", Cost: 1000},
	{ID: "express", Name: "Express shipping", Cost: 2500},
	{ID: "pickup", Name: "Store pickup", Cost: 0},
}

// Checkout выбор доставки и итог к оплате
type Checkout struct {
	mu       sync.RWMutex
	options  []domain.ShippingOption
	selected int
}

// NewCheckout selects the first option. An empty list falls back to DefaultShippingOptions.
func NewCheckout(options []domain.ShippingOption) *Checkout {
	if len(options) == 0 {
		options = DefaultShippingOptions
	}
	cp := make([]domain.ShippingOption, len(options))
	copy(cp, options)
	return &Checkout{options: cp}
}

func (c *Checkout) Options() []domain.ShippingOption {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.ShippingOption, len(c.options))
	copy(out, c.options)
	return out
}

func (c *Checkout) Selected() domain.ShippingOption {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options[c.selected]
}

func (c *Checkout) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, o := range c.options {
		if o.ID == id {
			c.selected = i
			return nil
		}
	}
	return ErrInvalidInput
}

// OrderSummary итог заказа
type OrderSummary struct {
	Items    int64                 `json:"items"`
	Subtotal float64               `json:"subtotal"`
	Shipping domain.ShippingOption `json:"shipping"`
	Total    float64               `json:"total"`
}

func (c *Checkout) Summary(snap cart.Snapshot) OrderSummary {
	ship := c.Selected()
	subtotal := snap.TotalPrice()
	total := decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(ship.Cost))
	return OrderSummary{
		Items:    snap.TotalItems(),
		Subtotal: subtotal,
		Shipping: ship,
		Total:    total.InexactFloat64(),
	}
}

// BuildOrderRequest maps the cart to the submission payload. Prices stay out:
// the API prices the order from its own catalog.
func BuildOrderRequest(snap cart.Snapshot, user domain.User) domain.OrderRequest {
	lines := snap.Lines()
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			Product:  domain.EntityRef{ID: l.Product.ID},
			Quantity: l.Quantity,
		})
	}
	return domain.OrderRequest{User: domain.EntityRef{ID: user.ID}, Details: items}
}

// Payment оформляет заказ: Idle → Loading → Success | Error.
// Error returns to Idle only through Reset. Nothing deduplicates a repeated
// submission, so a second call after a slow success creates a second order.
type Payment struct {
	api    apiclient.OrderAPI
	cell   *state.Cell[state.State[domain.OrderRequest]]
	logger *slog.Logger
}

func NewPayment(api apiclient.OrderAPI, logger *slog.Logger) *Payment {
	if logger == nil {
		logger = slog.Default()
	}
	return &Payment{
		api:    api,
		cell:   state.NewCell(state.Idle[domain.OrderRequest]()),
		logger: logger,
	}
}

func (p *Payment) State() state.State[domain.OrderRequest] { return p.cell.Get() }

func (p *Payment) Subscribe(fn func(state.State[domain.OrderRequest])) (cancel func()) {
	return p.cell.Subscribe(fn)
}

// CreateOrder submits the cart for user. A nil user fails immediately without
// a network call. On Success the submitted request is the payload; the caller
// clears the cart.
func (p *Payment) CreateOrder(ctx context.Context, snap cart.Snapshot, user *domain.User) state.State[domain.OrderRequest] {
	if user == nil {
		return p.set(state.Failure[domain.OrderRequest](ErrNotAuthenticated, ErrNotAuthenticated.Error()))
	}
	p.cell.Set(state.Loading[domain.OrderRequest]())

	req := BuildOrderRequest(snap, *user)
	if err := p.api.CreateOrder(ctx, req); err != nil {
		p.logger.Warn("order submission failed", "user_id", user.ID, "error", err)
		return p.set(remoteFailure[domain.OrderRequest]("error creating order", err))
	}
	p.logger.Info("order submitted", "user_id", user.ID, "lines", len(req.Details))
	return p.set(state.Success(req))
}

func (p *Payment) Reset() {
	p.cell.Set(state.Idle[domain.OrderRequest]())
}

func (p *Payment) set(s state.State[domain.OrderRequest]) state.State[domain.OrderRequest] {
	p.cell.Set(s)
	return s
}
