package state

import "sync"

// Cell holds a single current value. Writers replace it wholesale, readers
// always observe a complete value, and subscribers are told about every change.
type Cell[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)

	// notifyMu serialises delivery so subscribers see transitions in order.
	notifyMu sync.Mutex
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]func(T))}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.Update(func(T) T { return v })
}

// Update applies fn to the current value atomically and stores the result.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	next := fn(c.value)
	c.value = next
	subs := make([]func(T), 0, len(c.subs))
	for _, id := range c.order() {
		subs = append(subs, c.subs[id])
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn for every future change. The returned func cancels it.
// fn runs on the writer's goroutine and must not write to the same cell.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// order returns subscriber ids in registration order. Caller holds c.mu.
func (c *Cell[T]) order() []int {
	ids := make([]int, 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if _, ok := c.subs[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
