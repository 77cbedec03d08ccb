package service

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// UserAdmin список пользователей для администратора
type UserAdmin struct {
	*List[domain.User]
	api apiclient.UserAPI
}

func NewUserAdmin(api apiclient.UserAPI) *UserAdmin {
	return &UserAdmin{List: NewList("users", api.ListUsers), api: api}
}

// Delete marks the list Deleted after a successful delete and refetches it.
func (a *UserAdmin) Delete(ctx context.Context, id int64) state.State[[]domain.User] {
	return a.remove(ctx, func(ctx context.Context) error {
		return a.api.DeleteUser(ctx, id)
	})
}

// UserEditor форма создания/редактирования пользователя
type UserEditor struct {
	api  apiclient.UserAPI
	cell *state.Cell[state.State[domain.User]]

	mu      sync.RWMutex
	current *domain.User
}

func NewUserEditor(api apiclient.UserAPI) *UserEditor {
	return &UserEditor{api: api, cell: state.NewCell(state.Idle[domain.User]())}
}

func (e *UserEditor) State() state.State[domain.User] { return e.cell.Get() }

// Current is the user loaded for editing, nil when creating.
func (e *UserEditor) Current() *domain.User {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Load fetches the user for editing; the returned copy is the caller's.
func (e *UserEditor) Load(ctx context.Context, id int64) (*domain.User, state.State[domain.User]) {
	if id <= 0 {
		return nil, e.set(invalidInput[domain.User]("user id must be positive"))
	}
	e.cell.Set(state.Loading[domain.User]())
	u, err := e.api.GetUser(ctx, id)
	if err != nil {
		return nil, e.set(remoteFailure[domain.User]("error loading user", err))
	}
	e.mu.Lock()
	e.current = u
	e.mu.Unlock()
	loaded := *u
	return &loaded, e.set(state.Idle[domain.User]())
}

// Save creates the user when ID is 0 and updates it otherwise.
func (e *UserEditor) Save(ctx context.Context, u domain.User) state.State[domain.User] {
	if msg := validateUser(u); msg != "" {
		return e.set(invalidInput[domain.User](msg))
	}
	e.cell.Set(state.Loading[domain.User]())
	var (
		saved *domain.User
		err   error
	)
	if u.ID == 0 {
		saved, err = e.api.CreateUser(ctx, u)
	} else {
		saved, err = e.api.UpdateUser(ctx, u)
	}
	if err != nil {
		return e.set(remoteFailure[domain.User]("error saving user", err))
	}
	return e.set(state.Success(*saved))
}

func (e *UserEditor) Reset() {
	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()
	e.cell.Set(state.Idle[domain.User]())
}

func (e *UserEditor) set(s state.State[domain.User]) state.State[domain.User] {
	e.cell.Set(s)
	return s
}

func validateUser(u domain.User) string {
	switch {
	case u.ID < 0:
		return "user id must not be negative"
	case strings.TrimSpace(u.Name) == "":
		return "name is required"
	case strings.TrimSpace(u.Email) == "":
		return "email is required"
	case !u.Role.Valid():
		return "role must be admin or cliente"
	case u.ID == 0 && u.Password == "":
		return "password is required for new users"
	}
	return ""
}
