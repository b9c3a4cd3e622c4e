package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI page routes (HTML templates)
	mux.HandleFunc("/", s.handleRoot)

	// Static files (CSS, JS, images)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)

	// Rendered panel fragments
	mux.HandleFunc("/fragments/portfolio", s.app.FragmentHandler.Portfolio)
	mux.HandleFunc("/fragments/sectors", s.app.FragmentHandler.Sectors)
	mux.HandleFunc("/fragments/news", s.app.FragmentHandler.News)
	mux.HandleFunc("/fragments/feed", s.app.FragmentHandler.Feed)
	mux.HandleFunc("/fragments/analysis", s.app.FragmentHandler.Analysis)
	mux.HandleFunc("/fragments/context", s.app.FragmentHandler.Context)

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// API routes
	mux.HandleFunc("/api/holdings/add", s.app.HoldingsHandler.Add)
	mux.HandleFunc("/api/holdings/update/", s.app.HoldingsHandler.Update)
	mux.HandleFunc("/api/holdings/remove/", s.app.HoldingsHandler.Remove)
	mux.HandleFunc("/api/select", s.app.SelectionHandler.Clear)
	mux.HandleFunc("/api/select/", s.app.SelectionHandler.Select)
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleRoot serves the dashboard on "/" and a JSON 404 elsewhere.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.app.PageHandler.Dashboard(w, r)
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
