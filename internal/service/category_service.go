package service

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// NewCategoryList is the customer-facing category menu.
func NewCategoryList(api apiclient.CategoryAPI) *List[domain.Category] {
	return NewList("categories", api.ListCategories)
}

// CategoryAdmin управление категориями. Every successful write refetches the list.
// The API has no image field for categories, so image URLs are kept here,
// keyed by normalised name, for the lifetime of the session.
type CategoryAdmin struct {
	*List[domain.Category]
	api apiclient.CategoryAPI

	mu     sync.RWMutex
	images map[string]string
}

func NewCategoryAdmin(api apiclient.CategoryAPI) *CategoryAdmin {
	return &CategoryAdmin{
		List:   NewList("categories", api.ListCategories),
		api:    api,
		images: make(map[string]string),
	}
}

func (a *CategoryAdmin) Create(ctx context.Context, name, description, imageURL string) state.State[[]domain.Category] {
	if strings.TrimSpace(name) == "" {
		return a.reject("category name is required")
	}
	a.rememberImage(name, imageURL)
	if _, err := a.api.CreateCategory(ctx, domain.Category{Name: name, Description: description}); err != nil {
		return a.failWrite("error creating category", err)
	}
	return a.Refresh(ctx)
}

func (a *CategoryAdmin) Update(ctx context.Context, id int64, name, description, imageURL string) state.State[[]domain.Category] {
	if id <= 0 || strings.TrimSpace(name) == "" {
		return a.reject("category id and name are required")
	}
	a.rememberImage(name, imageURL)
	if _, err := a.api.UpdateCategory(ctx, domain.Category{ID: id, Name: name, Description: description}); err != nil {
		return a.failWrite("error updating category", err)
	}
	return a.Refresh(ctx)
}

func (a *CategoryAdmin) Delete(ctx context.Context, id int64) state.State[[]domain.Category] {
	if err := a.api.DeleteCategory(ctx, id); err != nil {
		return a.failWrite("error deleting category", err)
	}
	return a.Refresh(ctx)
}

// ImageFor returns the image URL remembered for a category name.
func (a *CategoryAdmin) ImageFor(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	url, ok := a.images[imageKey(name)]
	return url, ok
}

func (a *CategoryAdmin) rememberImage(name, url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	a.mu.Lock()
	a.images[imageKey(name)] = url
	a.mu.Unlock()
}

func (a *CategoryAdmin) reject(msg string) state.State[[]domain.Category] {
	s := invalidInput[[]domain.Category](msg)
	a.cell.Set(s)
	return s
}

func (a *CategoryAdmin) failWrite(what string, err error) state.State[[]domain.Category] {
	s := remoteFailure[[]domain.Category](what, err)
	a.cell.Set(s)
	return s
}

func imageKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
