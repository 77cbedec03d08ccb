// Package cart keeps the session's shopping cart in memory.
package cart

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/state"
)

// Line позиция корзины: product snapshot taken at add time and quantity >= 1.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int64          `json:"quantity"`
}

// Subtotal is price × quantity for the line.
func (l Line) Subtotal() float64 {
	return lineAmount(l).InexactFloat64()
}

// Snapshot неизменяемое состояние корзины, lines in insertion order.
type Snapshot struct {
	lines []Line
}

// Lines returns a copy of the lines.
func (s Snapshot) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s Snapshot) Len() int { return len(s.lines) }

// TotalItems is the sum of quantities.
func (s Snapshot) TotalItems() int64 {
	var n int64
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price × quantity over all lines.
func (s Snapshot) TotalPrice() float64 {
	sum := decimal.Zero
	for _, l := range s.lines {
		sum = sum.Add(lineAmount(l))
	}
	return sum.InexactFloat64()
}

// Find returns the line for productID.
func (s Snapshot) Find(productID int64) (Line, bool) {
	if i := s.index(productID); i >= 0 {
		return s.lines[i], true
	}
	return Line{}, false
}

func (s Snapshot) index(productID int64) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func lineAmount(l Line) decimal.Decimal {
	return decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(l.Quantity))
}

// Cart корзина сессии. Every mutation replaces the snapshot wholesale.
type Cart struct {
	cell *state.Cell[Snapshot]
}

func New() *Cart {
	return &Cart{cell: state.NewCell(Snapshot{})}
}

// Snapshot returns the current state.
func (c *Cart) Snapshot() Snapshot { return c.cell.Get() }

// Subscribe notifies fn after every mutation.
func (c *Cart) Subscribe(fn func(Snapshot)) (cancel func()) { return c.cell.Subscribe(fn) }

func (c *Cart) TotalItems() int64   { return c.Snapshot().TotalItems() }
func (c *Cart) TotalPrice() float64 { return c.Snapshot().TotalPrice() }

// AddProduct increments the existing line for p.ID or appends a new line with quantity 1.
// Stock is not checked.
func (c *Cart) AddProduct(p domain.Product) {
	c.cell.Update(func(s Snapshot) Snapshot {
		lines := s.Lines()
		if i := s.index(p.ID); i >= 0 {
			lines[i].Quantity++
			return Snapshot{lines: lines}
		}
		return Snapshot{lines: append(lines, Line{Product: p, Quantity: 1})}
	})
}

// IncreaseQuantity is a no-op when no line matches.
func (c *Cart) IncreaseQuantity(productID int64) {
	c.cell.Update(func(s Snapshot) Snapshot {
		i := s.index(productID)
		if i < 0 {
			return s
		}
		lines := s.Lines()
		lines[i].Quantity++
		return Snapshot{lines: lines}
	})
}

// DecreaseQuantity removes the line instead of letting it reach 0.
func (c *Cart) DecreaseQuantity(productID int64) {
	c.cell.Update(func(s Snapshot) Snapshot {
		i := s.index(productID)
		if i < 0 {
			return s
		}
		if s.lines[i].Quantity > 1 {
			lines := s.Lines()
			lines[i].Quantity--
			return Snapshot{lines: lines}
		}
		return s.without(i)
	})
}

func (c *Cart) RemoveItem(productID int64) {
	c.cell.Update(func(s Snapshot) Snapshot {
		i := s.index(productID)
		if i < 0 {
			return s
		}
		return s.without(i)
	})
}

func (c *Cart) Clear() {
	c.cell.Set(Snapshot{})
}

func (s Snapshot) without(i int) Snapshot {
	lines := make([]Line, 0, len(s.lines)-1)
	lines = append(lines, s.lines[:i]...)
	lines = append(lines, s.lines[i+1:]...)
	return Snapshot{lines: lines}
}
