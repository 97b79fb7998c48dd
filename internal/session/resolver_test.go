package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolve_MintsWhenNoCookie(t *testing.T) {
	cr := NewCookieResolver("tj_session", 30*24*time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rec := httptest.NewRecorder()

	id, isNew, err := cr.Resolve(rec, req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !isNew {
		t.Fatalf("expected a new session")
	}
	if id == "" {
		t.Fatalf("expected a non-empty session id")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 Set-Cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "tj_session" || c.Value != id {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be http-only")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie must be same-site lax")
	}
	if c.MaxAge != int((30 * 24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected max-age: %d", c.MaxAge)
	}
}

func TestResolve_ReusesExistingCookie(t *testing.T) {
	cr := NewCookieResolver("tj_session", time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.AddCookie(&http.Cookie{Name: "tj_session", Value: "existing-id"})
	rec := httptest.NewRecorder()

	id, isNew, err := cr.Resolve(rec, req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if isNew {
		t.Fatalf("must not mint for a request with a valid cookie")
	}
	if id != "existing-id" {
		t.Fatalf("expected existing id, got %q", id)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no Set-Cookie expected for an existing session")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
