package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	a := s.app

	// UI page routes (HTML templates)
	mux.HandleFunc("/", a.PageHandler.ServePage("landing.html", "home"))
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.AuthHandler.HandleLoginPage, a.AuthHandler.HandleLogin)
	})
	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.AuthHandler.HandleSignupPage, a.AuthHandler.HandleSignup)
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": a.AuthHandler.HandleLogout})
	})
	mux.HandleFunc("/hackup", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.HackUpHandler.HandleBoard, nil)
	})
	mux.HandleFunc("/create-request", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.HackUpHandler.HandleCreatePage, a.HackUpHandler.HandleCreate)
	})
	mux.HandleFunc("/vconnect", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.VConnectHandler.HandleBoard, a.VConnectHandler.HandlePost)
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.ProfileHandler.HandleProfile, a.ProfileHandler.HandleSaveProfile)
	})
	mux.HandleFunc("/quiz", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.QuizHandler.HandleQuiz, nil)
	})

	// Static files (CSS, JS, images)
	mux.HandleFunc("/static/", a.PageHandler.StaticFileHandler)

	// API routes
	mux.HandleFunc("/api/health", a.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", a.VersionHandler.ServeHTTP)
	mux.HandleFunc("/api/session", a.SessionAPIHandler.ServeHTTP)
	mux.HandleFunc("/api/requests", a.ListingAPIHandler.HandleRequests)
	mux.HandleFunc("/api/events", a.ListingAPIHandler.HandleEvents)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
