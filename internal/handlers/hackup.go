package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/bobmcallan/vibex/internal/cache"
	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/forms"
	"github.com/bobmcallan/vibex/internal/listing"
	"github.com/bobmcallan/vibex/internal/session"
)

// BoardRequests and BoardEvents name the listing boards in cache keys.
const (
	BoardRequests = "requests"
	BoardEvents   = "events"
)

// HackUpHandler serves the team-request board and the create-request form.
type HackUpHandler struct {
	base
	board *listing.TeamRequestBoard
	cache *cache.ResponseCache
	loc   *time.Location
}

// NewHackUpHandler creates a new HackUp handler.
func NewHackUpHandler(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager, board *listing.TeamRequestBoard, responses *cache.ResponseCache, loc *time.Location) *HackUpHandler {
	return &HackUpHandler{
		base:  newBase(logger, templates, devMode, sessions),
		board: board,
		cache: responses,
		loc:   loc,
	}
}

// HandleBoard serves GET /hackup.
func (h *HackUpHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	criteria, err := teamRequestCriteria(q, h.now().In(h.loc), h.loc)
	dateInvalid := err != nil

	all := h.board.All()
	data := h.pageData(w, r, store, "hackup")
	data["Requests"] = listing.FilterTeamRequests(all, criteria)
	data["Total"] = len(all)
	data["Skills"] = skillOptions(all)
	data["Query"] = q.Get("q")
	data["Skill"] = criteria.Skill
	data["Window"] = string(criteria.Window)
	data["Date"] = q.Get("date")
	data["DateInvalid"] = dateInvalid
	h.render(w, http.StatusOK, "hackup.html", data)
}

// HandleCreatePage serves GET /create-request. Visitors without a session
// are sent to /login.
func (h *HackUpHandler) HandleCreatePage(w http.ResponseWriter, r *http.Request) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}
	if !store.LoggedIn() {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.showCreate(w, r, store, http.StatusOK, forms.TeamRequestForm{}, nil)
}

// HandleCreate handles POST /create-request.
func (h *HackUpHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}
	user, loggedIn := store.Current()
	if !loggedIn {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var form forms.TeamRequestForm
	forms.Bind(r.PostForm, &form)

	req, errs, err := h.board.Submit(form, &user, h.now().In(h.loc))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to add team request")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if errs != nil {
		h.showCreate(w, r, store, http.StatusUnprocessableEntity, form, errs)
		return
	}

	h.cache.InvalidateBoard(BoardRequests)
	h.logger.Info().Str("id", req.ID).Str("project", req.ProjectName).Msg("team request posted")
	SetFlash(w, Flash{Title: "Request Submitted!", Message: "Your team request has been posted successfully."})
	http.Redirect(w, r, "/hackup", http.StatusFound)
}

func (h *HackUpHandler) showCreate(w http.ResponseWriter, r *http.Request, store *session.Store, status int, form forms.TeamRequestForm, errs forms.FieldErrors) {
	data := h.pageData(w, r, store, "create-request")
	data["Form"] = form
	data["Errors"] = errs
	data["Today"] = h.now().In(h.loc).Format(forms.DateLayout)
	h.render(w, status, "create-request.html", data)
}
