// Package session maps inbound requests to stable opaque session
// identifiers. The cookie binding lives here; callers only see (id, isNew).
package session

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
)

// Resolver yields the session identifier for a request, minting one when the
// request carries none.
type Resolver interface {
	Resolve(w http.ResponseWriter, r *http.Request) (id string, isNew bool, err error)
}

// NewID mints a new opaque session identifier.
func NewID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CookieResolver implements Resolver over a durable http-only cookie. The
// cookie is written only on creation; an existing cookie is never replaced.
type CookieResolver struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func NewCookieResolver(name string, ttl time.Duration, secure bool) *CookieResolver {
	if name == "" {
		name = "tj_session"
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &CookieResolver{Name: name, TTL: ttl, Secure: secure}
}

func (cr *CookieResolver) Resolve(w http.ResponseWriter, r *http.Request) (string, bool, error) {
	if c, err := r.Cookie(cr.Name); err == nil && c.Value != "" {
		return c.Value, false, nil
	}

	id, err := NewID()
	if err != nil {
		return "", false, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cr.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cr.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cr.Secure,
	})
	return id, true, nil
}
