package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/apiclient"
	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// Options настройки сессии витрины
type Options struct {
	Shipping []domain.ShippingOption
	Logger   *slog.Logger
	// Now is "today" for the KPI windows.
	Now func() time.Time
}

// Storefront объединяет корзину, оформление заказа и контейнеры состояния одной сессии.
// The logged-in user is set when Login reaches Success and cleared by Logout.
// The cart is cleared when Payment reaches Success.
type Storefront struct {
	api    apiclient.API
	logger *slog.Logger
	user   *state.Cell[*domain.User]

	Cart       *cart.Cart
	Catalog    *ProductList
	Categories *List[domain.Category]
	Login      *Login
	Checkout   *Checkout
	Payment    *Payment

	// admin
	Dashboard     *Dashboard
	SalesHistory  *List[domain.Order]
	LowStock      *List[domain.Product]
	TopSelling    *List[domain.Product]
	ProductEditor *ProductEditor
	Users         *UserAdmin
	UserEditor    *UserEditor
	CategoryAdmin *CategoryAdmin

	mu        sync.Mutex
	byCat     map[int64]*ProductList
	cancelAll []func()
}

func NewStorefront(api apiclient.API, opts Options) *Storefront {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sf := &Storefront{
		api:    api,
		logger: logger,
		user:   state.NewCell[*domain.User](nil),

		Cart:       cart.New(),
		Catalog:    NewProductList(api),
		Categories: NewCategoryList(api),
		Login:      NewLogin(api),
		Checkout:   NewCheckout(opts.Shipping),
		Payment:    NewPayment(api, logger),

		Dashboard:     NewDashboard(api, opts.Now),
		SalesHistory:  NewSalesHistory(api),
		LowStock:      NewLowStockReport(api),
		TopSelling:    NewTopSellingReport(api),
		ProductEditor: NewProductEditor(api, api),
		Users:         NewUserAdmin(api),
		UserEditor:    NewUserEditor(api),
		CategoryAdmin: NewCategoryAdmin(api),

		byCat: make(map[int64]*ProductList),
	}

	sf.cancelAll = append(sf.cancelAll,
		sf.Login.Subscribe(func(s state.State[domain.User]) {
			if u, ok := s.Value(); ok {
				sf.user.Set(&u)
				logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
			}
		}),
		sf.Payment.Subscribe(func(s state.State[domain.OrderRequest]) {
			logger.Debug("payment state", "state", s.Kind.String())
			if s.IsSuccess() {
				sf.Cart.Clear()
			}
		}),
	)
	return sf
}

// User returns the logged-in user or nil.
func (sf *Storefront) User() *domain.User {
	return sf.user.Get()
}

// IsAdmin gates admin navigation. It is not a security boundary.
func (sf *Storefront) IsAdmin() bool {
	return sf.User().IsAdmin()
}

func (sf *Storefront) Logout() {
	sf.user.Set(nil)
	sf.Login.Reset()
	sf.Payment.Reset()
}

// Product resolves a product for the cart: from the last fetched catalog when
// present, otherwise from the API.
func (sf *Storefront) Product(ctx context.Context, id int64) (domain.Product, error) {
	if p, ok := sf.Catalog.Find(id); ok {
		return p, nil
	}
	p, err := sf.api.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return *p, nil
}

// CategoryProducts returns the product list of one category, created on first use.
func (sf *Storefront) CategoryProducts(categoryID int64) *ProductList {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	pl, ok := sf.byCat[categoryID]
	if !ok {
		pl = NewCategoryProductList(sf.api, categoryID)
		sf.byCat[categoryID] = pl
	}
	return pl
}

// Close drops the session's internal subscriptions.
func (sf *Storefront) Close() {
	sf.mu.Lock()
	cancels := sf.cancelAll
	sf.cancelAll = nil
	sf.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}
