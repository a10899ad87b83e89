package http

import (
	"net/http"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux, handler *Handler, sessionMiddleware *middleware.SessionMiddleware) {
	r.Use(correlationMiddleware)

	r.Get("/health", handler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/click", handler.TrackClick)
		r.Get("/links", handler.ListLinks)
		r.With(sessionMiddleware.RequireAPI).Get("/stats", handler.GetStats)

		r.Route("/admin", func(r chi.Router) {
			r.Use(sessionMiddleware.RequireAPI)
			r.Get("/links", handler.ListAdminLinks)
			r.Post("/links", handler.CreateLink)
			r.Put("/links/{id}", handler.UpdateLink)
			r.Delete("/links/{id}", handler.DeleteLink)
		})
	})

	r.Get("/", handler.IndexPage)
	r.With(sessionMiddleware.RequirePage).Get("/stats", handler.StatsPage)
	r.With(sessionMiddleware.RequirePage).Get("/admin", handler.AdminPage)
	r.Get("/login", handler.LoginPage)
	r.Post("/login", handler.Login)
	r.Post("/logout", handler.Logout)
	r.Handle("/static/*", handler.StaticAssets())
}

// correlationMiddleware tags every request context with a correlation ID so
// log lines for one request can be tied together.
func correlationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithCorrelationID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
