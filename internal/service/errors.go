package service

import (
	"errors"
	"fmt"

	"storefront/internal/apiclient"
	"storefront/internal/state"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("user not authenticated")
	// ErrInvalidCredentials the API refused the login itself (400, 401 or 403)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// failureMessage collapses a remote failure into the text shown to the user.
// 4xx, 5xx and network failures are not told apart beyond the status code.
func failureMessage(what string, err error) string {
	if code, ok := apiclient.StatusCode(err); ok {
		return fmt.Sprintf("%s (code %d)", what, code)
	}
	if errors.Is(err, apiclient.ErrEmptyBody) {
		return what
	}
	return "network error: " + err.Error()
}

func invalid(msg string) string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, msg)
}

func invalidInput[T any](msg string) state.State[T] {
	return state.Failure[T](ErrInvalidInput, invalid(msg))
}

// remoteFailure keeps err as the cause so callers can tell a 404 from an outage.
func remoteFailure[T any](what string, err error) state.State[T] {
	return state.Failure[T](err, failureMessage(what, err))
}
