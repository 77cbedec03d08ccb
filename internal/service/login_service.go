package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/apiclient"
	"storefront/internal/domain"
	"storefront/internal/state"
)

// Login процесс входа: Idle → Loading → Success(user) | Error.
type Login struct {
	api  apiclient.AuthAPI
	cell *state.Cell[state.State[domain.User]]
}

func NewLogin(api apiclient.AuthAPI) *Login {
	return &Login{api: api, cell: state.NewCell(state.Idle[domain.User]())}
}

func (l *Login) State() state.State[domain.User] { return l.cell.Get() }

func (l *Login) Subscribe(fn func(state.State[domain.User])) (cancel func()) {
	return l.cell.Subscribe(fn)
}

// Submit rejects blank credentials without contacting the API.
func (l *Login) Submit(ctx context.Context, email, password string) state.State[domain.User] {
	if strings.TrimSpace(email) == "" || password == "" {
		return l.set(invalidInput[domain.User]("email and password are required"))
	}
	l.cell.Set(state.Loading[domain.User]())
	u, err := l.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		if code, ok := apiclient.StatusCode(err); ok {
			if code == http.StatusBadRequest || code == http.StatusUnauthorized || code == http.StatusForbidden {
				err = fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
			}
			return l.set(state.Failure[domain.User](err, "invalid credentials or server error"))
		}
		return l.set(remoteFailure[domain.User]("login failed", err))
	}
	u.Password = ""
	return l.set(state.Success(*u))
}

func (l *Login) Reset() {
	l.cell.Set(state.Idle[domain.User]())
}

func (l *Login) set(s state.State[domain.User]) state.State[domain.User] {
	l.cell.Set(s)
	return s
}
