package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "index.html")
}

func (h *Handler) StatsPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "stats.html")
}

func (h *Handler) AdminPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "admin.html")
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "login.html")
}

// StaticAssets serves the beacon script and shared assets under /static/.
func (h *Handler) StaticAssets() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

func servePage(w http.ResponseWriter, r *http.Request, name string) {
	http.ServeFileFS(w, r, staticFS, "static/"+name)
}
