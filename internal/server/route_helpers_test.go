package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouteByMethod_MatchingMethod(t *testing.T) {
	called := false
	routes := MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		},
	}

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	RouteByMethod(w, req, routes)

	if !called {
		t.Error("expected GET handler to be called")
	}
}

func TestRouteByMethod_NoMatchingMethod(t *testing.T) {
	routes := MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {
			t.Error("GET handler should not be called")
		},
	}

	req := httptest.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()

	RouteByMethod(w, req, routes)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRouteByMethod_HeadFallsBackToGet(t *testing.T) {
	called := false
	routes := MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) { called = true },
	}

	RouteByMethod(httptest.NewRecorder(), httptest.NewRequest("HEAD", "/hackup", nil), routes)

	if !called {
		t.Error("expected GET handler to serve HEAD")
	}
}

func TestRouteResourceCollection_GET(t *testing.T) {
	pageCalled := false
	page := func(w http.ResponseWriter, r *http.Request) {
		pageCalled = true
	}

	req := httptest.NewRequest("GET", "/vconnect", nil)
	w := httptest.NewRecorder()

	RouteResourceCollection(w, req, page, nil)

	if !pageCalled {
		t.Error("expected page handler to be called for GET")
	}
}

func TestRouteResourceCollection_POST(t *testing.T) {
	submitCalled := false
	submit := func(w http.ResponseWriter, r *http.Request) {
		submitCalled = true
	}

	req := httptest.NewRequest("POST", "/vconnect", nil)
	w := httptest.NewRecorder()

	RouteResourceCollection(w, req, nil, submit)

	if !submitCalled {
		t.Error("expected submit handler to be called for POST")
	}
}

func TestRouteResourceCollection_ReadOnlyRejectsPOST(t *testing.T) {
	page := func(w http.ResponseWriter, r *http.Request) {
		t.Error("page handler should not be called for POST")
	}

	req := httptest.NewRequest("POST", "/hackup", nil)
	w := httptest.NewRecorder()

	RouteResourceCollection(w, req, page, nil)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}
