// Package session keeps the per client Session Context. The cookie carries
// a signed token naming a server side session row; the user is re-read
// from the store on every request.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/petproject/community/internal/community/domain"
	"github.com/petproject/community/internal/community/service"
	"github.com/petproject/community/internal/community/store"
	"github.com/petproject/community/pkg/httpx"
	"github.com/petproject/community/pkg/idx"
	"github.com/petproject/community/pkg/jwtx"
	"github.com/petproject/community/pkg/slogx"
)

const DefaultCookieName = "community_session"

type ctxKey struct{}

// Manager mints and resolves session cookies.
type Manager struct {
	Store      store.Store
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	CookieName string
	Issuer     string
	TTL        time.Duration

	// Secure marks the cookie https only.
	Secure bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) ttl() time.Duration {
	if m.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return m.TTL
}

func (m *Manager) cookieName() string {
	if m.CookieName == "" {
		return DefaultCookieName
	}
	return m.CookieName
}

var _ service.SessionContext = (*Session)(nil)

// Session is one client's slot. It is not safe for concurrent use; each
// request gets its own.
type Session struct {
	m    *Manager
	w    http.ResponseWriter
	rec  *domain.SessionRecord
	user *domain.User
}

// FromContext returns the request's session. Outside the middleware it
// returns an anonymous session that cannot persist anything.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok {
		return s
	}
	return &Session{}
}

// Middleware resolves the session cookie and stores the Session in the
// request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s := m.load(ctx, w, r)

		if u, ok := s.Get(); ok {
			ctx = httpx.WithUserID(ctx, u.ID)
			ctx = slogx.With(ctx, slog.String("user_id", u.ID))
		}
		ctx = context.WithValue(ctx, ctxKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Manager) load(ctx context.Context, w http.ResponseWriter, r *http.Request) *Session {
	s := &Session{m: m, w: w}
	log := slogx.FromContext(ctx)

	c, err := r.Cookie(m.cookieName())
	if err != nil || c.Value == "" {
		return s
	}

	claims, err := m.Verifier.Verify(c.Value)
	if err != nil {
		log.Debug("ignoring invalid session cookie", slog.Any("error", err))
		return s
	}

	rec, err := m.Store.Sessions().GetSession(ctx, claims.SID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to load session", slog.Any("error", err))
		}
		return s
	}
	s.rec = &rec

	if rec.UserID != "" {
		u, err := m.Store.Users().GetUserByID(ctx, rec.UserID)
		if err != nil {
			log.Warn("session user not found", slog.String("user_id", rec.UserID), slog.Any("error", err))
			return s
		}
		s.user = &u
	}
	return s
}

// Get returns the authenticated user, if any.
func (s *Session) Get() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// ID returns the server side session id, or "" before anything is stored.
func (s *Session) ID() string {
	if s.rec == nil {
		return ""
	}
	return s.rec.ID
}

// Set installs u. A fresh session id is issued on every Set so an id seen
// before login is never authenticated; stored values are carried over.
func (s *Session) Set(ctx context.Context, u domain.User) error {
	if s.m == nil {
		return errors.New("session: no manager")
	}

	data := map[string]string{}
	if s.rec != nil {
		for k, v := range s.rec.Data {
			data[k] = v
		}
		if err := s.m.Store.Sessions().DeleteSession(ctx, s.rec.ID); err != nil {
			return err
		}
		s.rec = nil
	}

	if err := s.create(ctx, u.ID, data); err != nil {
		return err
	}
	s.user = &u
	return nil
}

// Clear drops the whole session, values included, and expires the cookie.
func (s *Session) Clear(ctx context.Context) error {
	s.user = nil
	if s.m == nil {
		return nil
	}
	if s.rec != nil {
		if err := s.m.Store.Sessions().DeleteSession(ctx, s.rec.ID); err != nil {
			return err
		}
		s.rec = nil
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.m.cookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Session) Value(key string) string {
	if s.rec == nil {
		return ""
	}
	return s.rec.Data[key]
}

// SetValue stores key, creating an anonymous session first if needed.
func (s *Session) SetValue(ctx context.Context, key, value string) error {
	if s.m == nil {
		return errors.New("session: no manager")
	}
	if s.rec == nil {
		return s.create(ctx, "", map[string]string{key: value})
	}
	if s.rec.Data == nil {
		s.rec.Data = map[string]string{}
	}
	s.rec.Data[key] = value
	return s.save(ctx)
}

func (s *Session) DeleteValue(ctx context.Context, key string) error {
	if s.rec == nil {
		return nil
	}
	if _, ok := s.rec.Data[key]; !ok {
		return nil
	}
	delete(s.rec.Data, key)
	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	s.rec.UpdatedAt = s.m.now()
	return s.m.Store.Sessions().SaveSession(ctx, *s.rec)
}

func (s *Session) create(ctx context.Context, userID string, data map[string]string) error {
	now := s.m.now()
	rec := domain.SessionRecord{
		ID:        idx.New().String(),
		UserID:    userID,
		Data:      data,
		ExpiresAt: now.Add(s.m.ttl()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	token, err := s.m.Signer.Sign(jwtx.NewSessionClaims(rec.ID, s.m.Issuer, s.m.ttl(), now))
	if err != nil {
		return err
	}
	if err := s.m.Store.Sessions().CreateSession(ctx, rec); err != nil {
		return err
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     s.m.cookieName(),
		Value:    token,
		Path:     "/",
		Expires:  rec.ExpiresAt,
		MaxAge:   int(s.m.ttl().Seconds()),
		HttpOnly: true,
		Secure:   s.m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.rec = &rec
	return nil
}
