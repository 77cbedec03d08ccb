package service

import (
	"context"

	"storefront/internal/state"
)

// List контейнер списка: Loading until the first fetch completes, then
// Success or Error. Each fetch replaces the state; overlapping fetches are not
// ordered, the last one to finish wins.
type List[T any] struct {
	cell  *state.Cell[state.State[[]T]]
	fetch func(context.Context) ([]T, error)
	what  string
}

func NewList[T any](what string, fetch func(context.Context) ([]T, error)) *List[T] {
	return &List[T]{
		cell:  state.NewCell(state.Loading[[]T]()),
		fetch: fetch,
		what:  what,
	}
}

func (l *List[T]) State() state.State[[]T] { return l.cell.Get() }

func (l *List[T]) Subscribe(fn func(state.State[[]T])) (cancel func()) {
	return l.cell.Subscribe(fn)
}

// Refresh fetches the list and returns the resulting state.
func (l *List[T]) Refresh(ctx context.Context) state.State[[]T] {
	l.cell.Set(state.Loading[[]T]())
	items, err := l.fetch(ctx)
	if err != nil {
		return l.fail(err)
	}
	if items == nil {
		items = []T{}
	}
	s := state.Success(items)
	l.cell.Set(s)
	return s
}

func (l *List[T]) fail(err error) state.State[[]T] {
	s := remoteFailure[[]T]("error fetching "+l.what, err)
	l.cell.Set(s)
	return s
}

// remove runs del and, on success, marks the list Deleted and refetches.
func (l *List[T]) remove(ctx context.Context, del func(context.Context) error) state.State[[]T] {
	l.cell.Set(state.Loading[[]T]())
	if err := del(ctx); err != nil {
		s := remoteFailure[[]T]("error deleting from "+l.what, err)
		l.cell.Set(s)
		return s
	}
	l.cell.Set(state.Deleted[[]T]())
	return l.Refresh(ctx)
}
