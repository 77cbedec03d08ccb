// Package state holds the view-state primitives shared by every container:
// a tagged union of Idle/Loading/Success/Error/Deleted and an observable
// cell that replaces its value wholesale on each transition.
package state

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates State.
type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindSuccess
	KindError
	KindDeleted
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is a tagged union. Data is set only for KindSuccess, Message and Err only for KindError.
// Err is the cause, when one is known; it is never serialized.
type State[T any] struct {
	Kind    Kind
	Data    T
	Message string
	Err     error
}

func Idle[T any]() State[T]    { return State[T]{Kind: KindIdle} }
func Loading[T any]() State[T] { return State[T]{Kind: KindLoading} }
func Deleted[T any]() State[T] { return State[T]{Kind: KindDeleted} }

func Success[T any](data T) State[T] {
	return State[T]{Kind: KindSuccess, Data: data}
}

func Error[T any](msg string) State[T] {
	return State[T]{Kind: KindError, Message: msg}
}

// Failure is Error with its cause attached.
func Failure[T any](err error, msg string) State[T] {
	return State[T]{Kind: KindError, Message: msg, Err: err}
}

func (s State[T]) IsIdle() bool    { return s.Kind == KindIdle }
func (s State[T]) IsLoading() bool { return s.Kind == KindLoading }
func (s State[T]) IsSuccess() bool { return s.Kind == KindSuccess }
func (s State[T]) IsError() bool   { return s.Kind == KindError }
func (s State[T]) IsDeleted() bool { return s.Kind == KindDeleted }

// Value returns the payload and whether the state is Success.
func (s State[T]) Value() (T, bool) {
	return s.Data, s.Kind == KindSuccess
}

// Fold dispatches on the tag. Every branch must be supplied; a nil handler panics.
func Fold[T, R any](s State[T],
	idle func() R,
	loading func() R,
	success func(T) R,
	failure func(string) R,
	deleted func() R,
) R {
	switch s.Kind {
	case KindIdle:
		return idle()
	case KindLoading:
		return loading()
	case KindSuccess:
		return success(s.Data)
	case KindError:
		return failure(s.Message)
	case KindDeleted:
		return deleted()
	default:
		panic(fmt.Sprintf("state: unknown kind %d", int(s.Kind)))
	}
}

type wireState[T any] struct {
	State   string `json:"state"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s State[T]) MarshalJSON() ([]byte, error) {
	w := wireState[T]{State: s.Kind.String()}
	switch s.Kind {
	case KindSuccess:
		d := s.Data
		w.Data = &d
	case KindError:
		w.Message = s.Message
	}
	return json.Marshal(w)
}
