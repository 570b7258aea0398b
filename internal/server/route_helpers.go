package server

import "net/http"

// RouteHandler is a function type for HTTP handlers.
type RouteHandler func(http.ResponseWriter, *http.Request)

// MethodRouter maps HTTP methods to handlers.
type MethodRouter map[string]RouteHandler

// RouteByMethod routes requests based on HTTP method. HEAD falls back to the
// GET handler.
func RouteByMethod(w http.ResponseWriter, r *http.Request, routes MethodRouter) {
	handler, ok := routes[r.Method]
	if !ok && r.Method == "HEAD" {
		handler, ok = routes["GET"]
	}
	if !ok {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	handler(w, r)
}

// RouteResourceCollection handles the page + form pattern.
// GET -> page, POST -> submit.
func RouteResourceCollection(w http.ResponseWriter, r *http.Request, page, submit RouteHandler) {
	routes := make(MethodRouter)
	if page != nil {
		routes["GET"] = page
	}
	if submit != nil {
		routes["POST"] = submit
	}
	RouteByMethod(w, r, routes)
}
