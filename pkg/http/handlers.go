package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"clicktrack/pkg/logging"
	"clicktrack/pkg/security"
	"clicktrack/pkg/service"
	"clicktrack/pkg/session"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	clickService *service.ClickService
	linkService  *service.LinkService
	statsService *service.StatsService
	sessions     session.Store
	credentials  *security.Credentials
	logger       *logging.Logger
}

func NewHandler(
	clickService *service.ClickService,
	linkService *service.LinkService,
	statsService *service.StatsService,
	sessions session.Store,
	credentials *security.Credentials,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		clickService: clickService,
		linkService:  linkService,
		statsService: statsService,
		sessions:     sessions,
		credentials:  credentials,
		logger:       logger,
	}
}

func (h *Handler) TrackClick(w http.ResponseWriter, r *http.Request) {
	var req service.RecordClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.clickService.RecordClick(r.Context(), &req, clientIP(r), r.UserAgent())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Click failures are logged by the service and terminate this
		// request only; the beacon swallows them client-side.
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "failed to compute stats", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.linkService.ListPublic(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

func (h *Handler) ListAdminLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.linkService.ListAdmin(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req service.SaveLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.linkService.CreateLink(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link id")
		return
	}

	var req service.SaveLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.linkService.UpdateLink(r.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link id")
		return
	}

	if err := h.linkService.DeleteLink(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	redirect := safeRedirectPath(r.FormValue("redirect"))

	if !h.credentials.Verify(username, password) {
		h.logger.LogAuthEvent(r.Context(), "login", username, false)
		http.Redirect(w, r, "/login?error=invalid", http.StatusFound)
		return
	}

	sess, err := h.sessions.Create(r.Context(), session.DefaultTTL)
	if err != nil {
		h.logger.Error(r.Context(), "failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(session.DefaultTTL.Seconds()),
	})

	h.logger.LogAuthEvent(r.Context(), "login", username, true)
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.logger.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	h.logger.LogAuthEvent(r.Context(), "logout", "", true)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// clientIP derives the origin IP the way the click table records it:
// X-Forwarded-For's first hop, then X-Real-IP, then the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}

// safeRedirectPath keeps post-login redirects on this site.
func safeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/admin"
	}
	return path
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
