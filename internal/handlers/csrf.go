package handlers

import (
	"context"
	"net/http"
)

type csrfKey struct{}

// CSRFCookie is the cookie holding the double-submit CSRF token.
const CSRFCookie = "_csrf"

// CSRFField is the form field carrying the token on HTML form posts.
const CSRFField = "_csrf"

// WithCSRFToken stores the token issued for this request, so a page rendered
// before the browser has the cookie can still embed it.
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfKey{}, token)
}

// CSRFToken returns the request's CSRF token from the context or the cookie.
func CSRFToken(r *http.Request) string {
	if token, ok := r.Context().Value(csrfKey{}).(string); ok && token != "" {
		return token
	}
	if c, err := r.Cookie(CSRFCookie); err == nil {
		return c.Value
	}
	return ""
}
