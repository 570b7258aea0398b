package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/session"
)

// PageHandler serves the landing page and static assets.
type PageHandler struct {
	base
	pagesDir string
}

// NewPageHandler creates a new page handler rendering templates from pagesDir.
func NewPageHandler(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager, pagesDir string) *PageHandler {
	return &PageHandler{
		base:     newBase(logger, templates, devMode, sessions),
		pagesDir: pagesDir,
	}
}

// ServePage creates a handler function for serving a specific page template.
// Only the exact root path is served; anything else under "/" is a 404.
func (h *PageHandler) ServePage(templateName string, pageName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			h.NotFound(w, r)
			return
		}
		if !RequireMethod(w, r, http.MethodGet) {
			return
		}

		store, ok := h.openSession(w, r)
		if !ok {
			return
		}
		h.render(w, http.StatusOK, templateName, h.pageData(w, r, store, pageName))
	}
}

// NotFound renders the HTML 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	store, err := h.sessions.Open(w, r)
	if err != nil {
		store = nil
	}
	h.render(w, http.StatusNotFound, "notfound.html", h.pageData(w, r, store, "notfound"))
}

// StaticFileHandler serves static files (CSS, JS, images).
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	staticDir := filepath.Join(h.pagesDir, "static")

	// Remove /static/ prefix from URL path
	path := strings.TrimPrefix(r.URL.Path, "/static/")
	fullPath := filepath.Join(staticDir, path)

	// Security: prevent directory traversal
	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if !strings.HasPrefix(absFullPath, absStaticDir+string(filepath.Separator)) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}
