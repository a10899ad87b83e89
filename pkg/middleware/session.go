package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/session"
)

type sessionContextKey string

const sessionKey sessionContextKey = "session"

// SessionMiddleware gates routes on an authenticated session. API routes get
// a 401 JSON body; page routes get a redirect to the login entry point
// carrying the originally requested path.
type SessionMiddleware struct {
	store  session.Store
	logger *logging.Logger
}

func NewSessionMiddleware(store session.Store, logger *logging.Logger) *SessionMiddleware {
	return &SessionMiddleware{store: store, logger: logger}
}

// RequireAPI denies with 401 {"error":"Unauthorized"} when no valid session
// accompanies the request.
func (m *SessionMiddleware) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.authenticate(r)
		if sess == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

// RequirePage redirects to /login?redirect=<originalPath> when no valid
// session accompanies the request.
func (m *SessionMiddleware) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.authenticate(r)
		if sess == nil {
			loginURL := "/login?redirect=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, loginURL, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

func (m *SessionMiddleware) authenticate(r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		m.logger.Error(r.Context(), "session lookup failed", "error", err)
		return nil
	}
	if sess == nil || !sess.Authenticated {
		return nil
	}
	return sess
}

func withSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSessionFromContext returns the session placed by the middleware, or nil.
func GetSessionFromContext(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}
