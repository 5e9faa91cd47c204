package service

import (
	"context"

	"github.com/petproject/community/internal/community/domain"
)

// Session keys used by the services.
const (
	SessionKeyPendingReset = "pw_reset_user"
)

// SessionContext is the per client slot holding at most one authenticated
// user plus a small string map. Set and Clear persist immediately.
type SessionContext interface {
	Get() (domain.User, bool)
	Set(ctx context.Context, u domain.User) error
	Clear(ctx context.Context) error

	Value(key string) string
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// requireLogin returns the session user or ErrUnauthenticated.
func requireLogin(sess SessionContext) (domain.User, error) {
	if sess == nil {
		return domain.User{}, ErrUnauthenticated
	}
	u, ok := sess.Get()
	if !ok {
		return domain.User{}, ErrUnauthenticated
	}
	return u, nil
}
