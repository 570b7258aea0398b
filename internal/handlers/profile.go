package handlers

import (
	"html/template"
	"net/http"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/forms"
	"github.com/bobmcallan/vibex/internal/session"
)

// ProfileHandler serves the profile page and handles profile updates.
type ProfileHandler struct {
	base
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{base: newBase(logger, templates, devMode, sessions)}
}

// HandleProfile serves GET /profile. "?mode=edit" opens the edit form.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	editor, store, ok := h.openEditor(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("mode") == "edit" {
		if err := editor.Edit(); err != nil {
			h.logger.Warn().Err(err).Msg("profile edit refused")
		}
	}
	h.show(w, r, store, editor, http.StatusOK, forms.ProfileFormFrom(editor.Draft()), nil)
}

// HandleSaveProfile handles POST /profile with action "save" or "cancel".
func (h *ProfileHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	editor, store, ok := h.openEditor(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := editor.Edit(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("action") == "cancel" {
		if err := editor.Cancel(); err != nil {
			h.logger.Warn().Err(err).Msg("profile cancel refused")
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		http.Redirect(w, r, "/profile", http.StatusFound)
		return
	}

	var form forms.ProfileForm
	forms.Bind(r.PostForm, &form)
	form.Normalize()

	if errs := form.Validate(); errs != nil {
		if err := editor.SetDraft(form.Draft(editor.User())); err != nil {
			h.logger.Warn().Err(err).Msg("profile draft refused")
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.show(w, r, store, editor, http.StatusUnprocessableEntity, form, errs)
		return
	}

	u, err := editor.Save(r.Context(), form.Patch())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to save profile")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info().Str("name", u.Name).Msg("profile updated")
	SetFlash(w, Flash{Title: "Profile Updated", Message: "Your changes have been saved."})
	http.Redirect(w, r, "/profile", http.StatusFound)
}

// openEditor opens the visitor's session and a profile editor over it.
// Visitors without a session are redirected to /login.
func (h *ProfileHandler) openEditor(w http.ResponseWriter, r *http.Request) (*session.ProfileEditor, *session.Store, bool) {
	store, ok := h.openSession(w, r)
	if !ok {
		return nil, nil, false
	}
	editor, err := session.NewProfileEditor(store)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return nil, nil, false
	}
	return editor, store, true
}

func (h *ProfileHandler) show(w http.ResponseWriter, r *http.Request, store *session.Store, editor *session.ProfileEditor, status int, form forms.ProfileForm, errs forms.FieldErrors) {
	data := h.pageData(w, r, store, "profile")
	data["Editing"] = editor.State() == session.Editing
	data["Draft"] = editor.Draft()
	data["Form"] = form
	data["Errors"] = errs
	h.render(w, status, "profile.html", data)
}
