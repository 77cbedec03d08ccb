package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

type fakeRemote struct {
	srv       *httptest.Server
	orderBody []byte
	hits      map[string]int
}

func newFakeRemote(t *testing.T) *fakeRemote {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &fakeRemote{hits: make(map[string]int)}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		f.hits[c.Request.Method+" "+c.FullPath()]++
		c.Next()
	})

	cat := &domain.Category{ID: 3, Name: "Balones"}
	r.GET("/api/productos", func(c *gin.Context) {
		c.JSON(http.StatusOK, []domain.Product{
			{ID: 1, Name: "Camiseta", Price: 15990, Stock: 12, Category: cat},
			{ID: 2, Name: "Balón", Price: 9990, Stock: 3},
		})
	})
	r.GET("/api/productos/low-stock", func(c *gin.Context) {
		c.JSON(http.StatusOK, []domain.Product{{ID: 2, Name: "Balón", Stock: 3}})
	})
	r.GET("/api/productos/top-selling", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/api/productos/:id", func(c *gin.Context) {
		if c.Param("id") != "5" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, domain.Product{ID: 5, Name: "Zapatilla"})
	})
	r.GET("/api/productos/categoria/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, []domain.Product{{ID: 1, Name: "Camiseta", Category: cat}})
	})
	r.DELETE("/api/productos/:id", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	r.POST("/api/usuarios/login", func(c *gin.Context) {
		var req domain.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Password != "secret" {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusOK, domain.User{ID: 9, Name: "Ana", Email: req.Email, Role: domain.RoleAdmin})
	})
	r.PUT("/api/categorias/:id", func(c *gin.Context) {
		var in domain.Category
		_ = c.ShouldBindJSON(&in)
		c.JSON(http.StatusOK, in)
	})
	r.POST("/api/categorias", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	r.PUT("/api/productos/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.POST("/api/boletas", func(c *gin.Context) {
		f.orderBody, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusCreated)
	})
	r.GET("/api/boletas", func(c *gin.Context) {
		c.String(http.StatusOK, `[{"id":1,"fecha":"2024-01-10T10:00:00","total":200,"usuario":null,"detalles":[]},{"id":2,"fecha":null,"total":null,"detalles":[]}]`)
	})

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func newTestClient(f *fakeRemote) *Client {
	return New(Config{BaseURL: f.srv.URL, Timeout: 2 * time.Second})
}

func TestListProducts(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	list, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Camiseta", list[0].Name)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, int64(3), list[0].Category.ID)
	assert.Nil(t, list[1].Category)
}

func TestGetProduct_PathParam(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	p, err := c.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Zapatilla", p.Name)

	_, err = c.GetProduct(context.Background(), 6)
	code, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListProductsByCategory(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	list, err := c.ListProductsByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, f.hits["GET /api/productos/categoria/:id"])
}

func TestReports(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	low, err := c.ListLowStockProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, low, 1)

	_, err = c.ListTopSellingProducts(context.Background())
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestDeleteProduct_ServerError(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	err := c.DeleteProduct(context.Background(), 1)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "delete product", se.Op)
}

func TestLogin(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	u, err := c.Login(context.Background(), "ana@kjm.cl", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(9), u.ID)
	assert.True(t, u.IsAdmin())

	_, err = c.Login(context.Background(), "ana@kjm.cl", "wrong")
	assert.True(t, IsStatus(err))
}

func TestUpdateCategory_SendsBody(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	out, err := c.UpdateCategory(context.Background(), domain.Category{ID: 4, Name: "Zapatillas", Description: "Running"})
	require.NoError(t, err)
	assert.Equal(t, "Running", out.Description)
}

func TestWrite_NoContentKeepsSentEntity(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)
	ctx := context.Background()

	cat, err := c.CreateCategory(ctx, domain.Category{Name: "Raquetas"})
	require.NoError(t, err)
	assert.Equal(t, "Raquetas", cat.Name)

	p, err := c.UpdateProduct(ctx, domain.Product{ID: 5, Name: "Zapatilla", Price: 45990})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, 45990.0, p.Price)

	_, err = c.ListTopSellingProducts(ctx)
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestCreateOrder_Payload(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	err := c.CreateOrder(context.Background(), domain.OrderRequest{
		User: domain.EntityRef{ID: 9},
		Details: []domain.OrderItem{
			{Product: domain.EntityRef{ID: 1}, Quantity: 2},
			{Product: domain.EntityRef{ID: 2}, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.True(t, json.Valid(f.orderBody))
	assert.JSONEq(t,
		`{"usuario":{"id":9},"detalles":[{"producto":{"id":1},"cantidad":2},{"producto":{"id":2},"cantidad":1}]}`,
		string(f.orderBody))
}

func TestListOrders_NullableFields(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)

	orders, err := c.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	day, ok := orders[0].DatePrefix()
	assert.True(t, ok)
	assert.Equal(t, "2024-01-10", day)
	assert.Equal(t, 200.0, orders[0].TotalOrZero())
	_, ok = orders[1].DatePrefix()
	assert.False(t, ok)
	assert.Zero(t, orders[1].TotalOrZero())
}

func TestTransportFailure(t *testing.T) {
	f := newFakeRemote(t)
	c := newTestClient(f)
	f.srv.Close()

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.False(t, IsStatus(err))
}
