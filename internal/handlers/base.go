package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/session"
)

// base carries what every page handler needs: templates, the session manager
// and the clock.
type base struct {
	logger    *common.Logger
	templates *template.Template
	devMode   bool
	sessions  *session.Manager
	now       func() time.Time
}

func newBase(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager) base {
	return base{
		logger:    logger,
		templates: templates,
		devMode:   devMode,
		sessions:  sessions,
		now:       time.Now,
	}
}

// openSession returns the visitor's hydrated session store. On failure it has
// already written a 500.
func (b *base) openSession(w http.ResponseWriter, r *http.Request) (*session.Store, bool) {
	store, err := b.sessions.Open(w, r)
	if err != nil {
		b.logger.Error().Str("path", r.URL.Path).Err(err).Msg("failed to open session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return store, true
}

// pageData builds the values shared by every page.
func (b *base) pageData(w http.ResponseWriter, r *http.Request, store *session.Store, page string) map[string]interface{} {
	data := map[string]interface{}{
		"Page":      page,
		"DevMode":   b.devMode,
		"LoggedIn":  false,
		"User":      nil,
		"CSRFToken": CSRFToken(r),
		"CSRFField": CSRFField,
		"Flash":     PopFlash(w, r),
		"Now":       b.now(),
	}
	if store != nil {
		if u, ok := store.Current(); ok {
			data["LoggedIn"] = true
			data["User"] = u
		}
	}
	return data
}

// render executes templateName with data at the given status.
func (b *base) render(w http.ResponseWriter, status int, templateName string, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := b.templates.ExecuteTemplate(w, templateName, data); err != nil {
		b.logger.Error().Str("template", templateName).Err(err).Msg("failed to render page")
	}
}
