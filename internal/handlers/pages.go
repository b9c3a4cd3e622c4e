package handlers

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/config"
)

// PageHandler serves HTML pages rendered with Go templates.
type PageHandler struct {
	logger    *common.Logger
	templates *template.Template
	devMode   bool
	refresh   config.RefreshConfig
}

// NewPageHandler creates a new page handler that loads templates from the pages directory.
func NewPageHandler(logger *common.Logger, devMode bool, refresh config.RefreshConfig) *PageHandler {
	pagesDir := FindPagesDir()

	templates := template.Must(template.ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return &PageHandler{
		logger:    logger,
		templates: templates,
		devMode:   devMode,
		refresh:   refresh,
	}
}

// FindPagesDir locates the pages directory.
// Checks common locations relative to the working directory and binary.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// Dashboard renders the dashboard page. Refresh intervals are passed to
// the page so the client-side poller honors configuration.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Page":                 "dashboard",
		"DevMode":              h.devMode,
		"Version":              config.GetVersion(),
		"PortfolioSeconds":     h.refresh.PortfolioSeconds,
		"SectorsSeconds":       h.refresh.SectorsSeconds,
		"NewsSeconds":          h.refresh.NewsSeconds,
		"MarketContextSeconds": h.refresh.MarketContextSeconds,
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "dashboard.html").Str("error", err.Error()).Msg("failed to render dashboard")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// StaticFileHandler serves static files (CSS, JS, images).
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	pagesDir := FindPagesDir()
	staticDir := filepath.Join(pagesDir, "static")

	// Remove /static/ prefix from URL path
	path := r.URL.Path[len("/static/"):]
	fullPath := filepath.Join(staticDir, path)

	// Security: prevent directory traversal
	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if len(absFullPath) < len(absStaticDir) || absFullPath[:len(absStaticDir)] != absStaticDir {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}
