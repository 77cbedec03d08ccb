package repository

import (
	"context"
	"errors"

	"storefront/internal/service"
)

// ErrNotFound возвращается, когда сессия не найдена
var ErrNotFound = errors.New("not found")

// SessionRepository интерфейс хранилища сессий витрины
type SessionRepository interface {
	Create(ctx context.Context) (string, *service.Storefront, error)
	Get(ctx context.Context, id string) (*service.Storefront, error)
	Delete(ctx context.Context, id string) error
	Len() int
}

// Factory собирает новую сессию
type Factory func() *service.Storefront
