package app

import (
	"net/http"

	"github.com/ardaguler/theatre-reservation-system/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId  = sessionKey("userID")
	SessionKeyIsStaff = sessionKey("isStaff")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const userContextKey = contextKey("user")

// contextGetUser returns the authenticated user injected by requireAuthentication.
// Only the identity fields (ID, IsStaff) are populated from the session.
func (app *Application) contextGetUser(r *http.Request) domain.User {
	user, ok := r.Context().Value(userContextKey).(domain.User)
	if !ok {
		panic("missing user from context")
	}

	return user
}
