package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func product(id int64, price float64) domain.Product {
	return domain.Product{ID: id, Name: "P", Price: price, Stock: 1}
}

func TestAddProduct_DistinctLines(t *testing.T) {
	c := New()
	ids := []int64{3, 1, 3, 2, 1, 1, 5}
	for _, id := range ids {
		c.AddProduct(product(id, 10))
	}
	assert.Equal(t, 4, c.Snapshot().Len())
	assert.Equal(t, int64(len(ids)), c.TotalItems())

	// insertion order
	var got []int64
	for _, l := range c.Snapshot().Lines() {
		got = append(got, l.Product.ID)
	}
	assert.Equal(t, []int64{3, 1, 2, 5}, got)
}

func TestAddProduct_Twice(t *testing.T) {
	c := New()
	p := product(7, 1250.5)
	c.AddProduct(p)
	c.AddProduct(p)

	lines := c.Snapshot().Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, int64(2), c.TotalItems())
	assert.Equal(t, 2*p.Price, c.TotalPrice())
}

func TestTotals_RoundTrip(t *testing.T) {
	c := New()
	a := product(1, 1000)
	b := product(2, 2500)
	c.AddProduct(a)
	c.AddProduct(b)
	c.IncreaseQuantity(a.ID)

	assert.Equal(t, 4500.0, c.TotalPrice())
	assert.Equal(t, int64(3), c.TotalItems())
}

func TestDecreaseQuantity(t *testing.T) {
	c := New()
	c.AddProduct(product(1, 10))
	c.AddProduct(product(1, 10))

	c.DecreaseQuantity(1)
	l, ok := c.Snapshot().Find(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), l.Quantity)

	c.DecreaseQuantity(1)
	_, ok = c.Snapshot().Find(1)
	assert.False(t, ok, "quantity-1 line must be removed")

	c.DecreaseQuantity(1)
	assert.Equal(t, 0, c.Snapshot().Len())
}

func TestIncreaseQuantity_Unknown(t *testing.T) {
	c := New()
	c.AddProduct(product(1, 10))
	c.IncreaseQuantity(99)
	assert.Equal(t, int64(1), c.TotalItems())
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddProduct(product(1, 10))
	c.AddProduct(product(2, 20))

	c.RemoveItem(42)
	assert.Equal(t, 2, c.Snapshot().Len())

	c.RemoveItem(1)
	lines := c.Snapshot().Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Product.ID)
}

func TestClear(t *testing.T) {
	c := New()
	c.Clear()
	assert.Zero(t, c.TotalItems())

	c.AddProduct(product(1, 10))
	c.AddProduct(product(2, 20))
	c.IncreaseQuantity(2)
	c.Clear()
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestSnapshot_IsolatedFromLaterMutations(t *testing.T) {
	c := New()
	c.AddProduct(product(1, 10))
	before := c.Snapshot()
	c.AddProduct(product(1, 10))

	l, _ := before.Find(1)
	assert.Equal(t, int64(1), l.Quantity)
}

func TestProductPriceFrozenAtAdd(t *testing.T) {
	c := New()
	p := product(1, 10)
	c.AddProduct(p)
	p.Price = 99
	c.IncreaseQuantity(1)
	assert.Equal(t, 20.0, c.TotalPrice())
}

func TestSubscribe(t *testing.T) {
	c := New()
	var seen []int64
	cancel := c.Subscribe(func(s Snapshot) { seen = append(seen, s.TotalItems()) })
	c.AddProduct(product(1, 10))
	c.AddProduct(product(1, 10))
	cancel()
	c.Clear()
	assert.Equal(t, []int64{1, 2}, seen)
}
