package handlers

import (
	"html/template"
	"net/http"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/forms"
	"github.com/bobmcallan/vibex/internal/session"
)

// AuthHandler serves the mock login and signup pages. Any well-formed
// credentials sign the visitor in; nothing is checked against an account.
type AuthHandler struct {
	base
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{base: newBase(logger, templates, devMode, sessions)}
}

// HandleLoginPage serves GET /login.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.showForm(w, r, http.StatusOK, "login.html", "login", "", nil)
}

// HandleSignupPage serves GET /signup.
func (h *AuthHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	h.showForm(w, r, http.StatusOK, "signup.html", "signup", "", nil)
}

// HandleLogin handles POST /login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var form forms.LoginForm
	forms.Bind(r.PostForm, &form)
	form.Normalize()

	if errs := form.Validate(); errs != nil {
		h.showForm(w, r, http.StatusUnprocessableEntity, "login.html", "login", form.Email, errs)
		return
	}
	h.signIn(w, r, form.Email)
}

// HandleSignup handles POST /signup.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var form forms.SignupForm
	forms.Bind(r.PostForm, &form)
	form.Normalize()

	if errs := form.Validate(); errs != nil {
		h.showForm(w, r, http.StatusUnprocessableEntity, "signup.html", "signup", form.Email, errs)
		return
	}
	h.signIn(w, r, form.Email)
}

// HandleLogout handles POST /logout.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}
	if err := store.Logout(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("failed to clear session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) signIn(w http.ResponseWriter, r *http.Request, email string) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}
	u, err := store.Login(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to persist session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.logger.Info().Str("name", u.Name).Msg("visitor signed in")
	http.Redirect(w, r, "/hackup", http.StatusFound)
}

func (h *AuthHandler) showForm(w http.ResponseWriter, r *http.Request, status int, templateName, page, email string, errs forms.FieldErrors) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}
	data := h.pageData(w, r, store, page)
	data["Email"] = email
	data["Errors"] = errs
	h.render(w, status, templateName, data)
}
