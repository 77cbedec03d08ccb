package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/state"
)

func ptr[T any](v T) *T { return &v }

func TestDashboard(t *testing.T) {
	api := newFakeAPI()
	api.orders = []domain.Order{
		{ID: 1, Date: ptr("2024-01-01T10:00:00"), Total: ptr(100.0)},
		{ID: 2, Date: ptr("2024-01-10T10:00:00"), Total: ptr(200.0)},
		{ID: 3, Date: ptr("2023-11-01T10:00:00"), Total: ptr(999.0)},
	}
	today := time.Date(2024, 1, 11, 12, 0, 0, 0, time.Local)
	d := NewDashboard(api, func() time.Time { return today })
	assert.True(t, d.State().IsLoading())

	s := d.Refresh(context.Background())
	sum, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, 200.0, sum.WeeklySales)
	assert.Equal(t, 300.0, sum.MonthlySales)

	api.fail["ListOrders"] = errNetwork
	s = d.Refresh(context.Background())
	assert.True(t, s.IsError())
}

func TestSalesHistory_SortedNewestFirst(t *testing.T) {
	api := newFakeAPI()
	api.orders = []domain.Order{
		{ID: 1, Date: ptr("2024-01-01T10:00:00")},
		{ID: 2},
		{ID: 3, Date: ptr("2024-03-01T10:00:00")},
	}
	s := NewSalesHistory(api).Refresh(context.Background())
	orders, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, int64(3), orders[0].ID)
	assert.Equal(t, int64(2), orders[2].ID)
}

func TestReports(t *testing.T) {
	api := newFakeAPI()
	api.lowStock = []domain.Product{{ID: 4, Stock: 2}}

	s := NewLowStockReport(api).Refresh(context.Background())
	low, ok := s.Value()
	require.True(t, ok)
	assert.Len(t, low, 1)

	s = NewTopSellingReport(api).Refresh(context.Background())
	top, ok := s.Value()
	require.True(t, ok)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestBuildInventory(t *testing.T) {
	api := seededCatalog()
	ctx := context.Background()
	products := NewProductList(api)
	categories := NewCategoryList(api)

	inv := BuildInventory(products.State(), categories.State())
	assert.True(t, inv.IsLoading())

	inv = BuildInventory(products.Refresh(ctx), categories.Refresh(ctx))
	got, ok := inv.Value()
	require.True(t, ok)
	assert.Equal(t, 1, got.Categories[0].Products)
	assert.Equal(t, 0, got.Categories[1].Products)
	assert.Equal(t, 2, got.Uncategorized)
	require.Len(t, got.LowStock, 1)
	assert.True(t, got.LowStock[0].Critical)

	inv = BuildInventory(state.Error[[]domain.Product]("boom"), categories.State())
	assert.Equal(t, "boom", inv.Message)
}

func TestUserAdmin_Delete(t *testing.T) {
	api := newFakeAPI()
	api.users = []domain.User{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Luis"}}
	ua := NewUserAdmin(api)
	ua.Refresh(context.Background())

	var sawDeleted bool
	cancel := ua.Subscribe(func(s state.State[[]domain.User]) {
		if s.IsDeleted() {
			sawDeleted = true
		}
	})
	defer cancel()

	s := ua.Delete(context.Background(), 2)
	users, ok := s.Value()
	require.True(t, ok)
	assert.Len(t, users, 1)
	assert.True(t, sawDeleted)
}

func TestUserEditor(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	e := NewUserEditor(api)

	cases := []domain.User{
		{Name: "", Email: "a@b.c", Role: domain.RoleCustomer, Password: "x"},
		{Name: "Ana", Email: " ", Role: domain.RoleCustomer, Password: "x"},
		{Name: "Ana", Email: "a@b.c", Role: "root", Password: "x"},
		{Name: "Ana", Email: "a@b.c", Role: domain.RoleCustomer},
	}
	for _, u := range cases {
		s := e.Save(ctx, u)
		require.True(t, s.IsError(), "%+v", u)
	}
	assert.Zero(t, api.count("CreateUser"))

	s := e.Save(ctx, domain.User{Name: "Ana", Email: "a@b.c", Role: domain.RoleCustomer, Password: "x"})
	saved, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, int64(1), saved.ID)

	loaded, ls := e.Load(ctx, saved.ID)
	require.True(t, ls.IsIdle())
	e.Reset()
	require.NotNil(t, loaded)
	cur := *loaded
	cur.Password = ""
	cur.Role = domain.RoleAdmin
	s = e.Save(ctx, cur)
	require.True(t, s.IsSuccess())
	assert.Equal(t, 1, api.count("UpdateUser"))

	missing, ls := e.Load(ctx, 42)
	assert.Nil(t, missing)
	assert.Contains(t, ls.Message, "code 404")
}

func TestCategoryAdmin(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	a := NewCategoryAdmin(api)

	s := a.Create(ctx, "  ", "", "")
	require.True(t, s.IsError())
	assert.Zero(t, api.count("CreateCategory"))

	s = a.Create(ctx, "Balones", "Fútbol y más", "https://img/balones.png")
	cats, ok := s.Value()
	require.True(t, ok)
	require.Len(t, cats, 1)

	url, ok := a.ImageFor(" BALONES ")
	assert.True(t, ok)
	assert.Equal(t, "https://img/balones.png", url)

	s = a.Update(ctx, cats[0].ID, "Pelotas", "", "")
	cats, _ = s.Value()
	assert.Equal(t, "Pelotas", cats[0].Name)
	_, ok = a.ImageFor("pelotas")
	assert.False(t, ok)

	api.fail["DeleteCategory"] = statusErr("delete category", 409)
	s = a.Delete(ctx, cats[0].ID)
	assert.Equal(t, "error deleting category (code 409)", s.Message)

	delete(api.fail, "DeleteCategory")
	s = a.Delete(ctx, cats[0].ID)
	cats, ok = s.Value()
	require.True(t, ok)
	assert.Empty(t, cats)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.users = []domain.User{{ID: 3, Name: "Ana", Email: "ana@kjm.cl", Password: "pw", Role: domain.RoleAdmin}}
	l := NewLogin(api)

	s := l.Submit(ctx, "", "pw")
	require.True(t, s.IsError())
	assert.ErrorIs(t, s.Err, ErrInvalidInput)
	assert.Zero(t, api.count("Login"))

	s = l.Submit(ctx, "ana@kjm.cl", "bad")
	assert.Equal(t, "invalid credentials or server error", s.Message)
	assert.ErrorIs(t, s.Err, ErrInvalidCredentials)

	api.fail["Login"] = statusErr("login", 503)
	s = l.Submit(ctx, "ana@kjm.cl", "pw")
	assert.Equal(t, "invalid credentials or server error", s.Message)
	assert.NotErrorIs(t, s.Err, ErrInvalidCredentials)
	code, _ := apiclient.StatusCode(s.Err)
	assert.Equal(t, 503, code)
	delete(api.fail, "Login")

	s = l.Submit(ctx, " ana@kjm.cl ", "pw")
	u, ok := s.Value()
	require.True(t, ok)
	assert.Empty(t, u.Password)
	assert.True(t, u.IsAdmin())

	l.Reset()
	assert.True(t, l.State().IsIdle())
}
