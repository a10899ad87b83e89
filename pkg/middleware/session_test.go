package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/session"

	"github.com/stretchr/testify/assert"
)

func newTestMiddleware() (*SessionMiddleware, session.Store) {
	store := session.NewMemoryStore()
	return NewSessionMiddleware(store, logging.NewLogger(logging.LevelError)), store
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAPIMissingCookie(t *testing.T) {
	m, _ := newTestMiddleware()
	handler := m.RequireAPI(okHandler())

	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestRequireAPIUnknownSession(t *testing.T) {
	m, _ := newTestMiddleware()
	handler := m.RequireAPI(okHandler())

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "bogus"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAPIExpiredSession(t *testing.T) {
	m, store := newTestMiddleware()
	sess, err := store.Create(context.Background(), -time.Second)
	assert.NoError(t, err)

	handler := m.RequireAPI(okHandler())

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAPIValidSession(t *testing.T) {
	m, store := newTestMiddleware()
	sess, err := store.Create(context.Background(), session.DefaultTTL)
	assert.NoError(t, err)

	var seen *session.Session
	handler := m.RequireAPI(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, sess.ID, seen.ID)
}

func TestRequirePageRedirectsWithPath(t *testing.T) {
	m, _ := newTestMiddleware()
	handler := m.RequirePage(okHandler())

	req := httptest.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin", w.Header().Get("Location"))
}

func TestRequirePageValidSession(t *testing.T) {
	m, store := newTestMiddleware()
	sess, err := store.Create(context.Background(), session.DefaultTTL)
	assert.NoError(t, err)

	handler := m.RequirePage(okHandler())

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
