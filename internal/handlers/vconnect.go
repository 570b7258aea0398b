package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/bobmcallan/vibex/internal/cache"
	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/forms"
	"github.com/bobmcallan/vibex/internal/listing"
	"github.com/bobmcallan/vibex/internal/models"
	"github.com/bobmcallan/vibex/internal/session"
)

// VConnectHandler serves the community-event board and its post form.
type VConnectHandler struct {
	base
	board *listing.EventBoard
	cache *cache.ResponseCache
	loc   *time.Location
}

// NewVConnectHandler creates a new VConnect handler.
func NewVConnectHandler(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager, board *listing.EventBoard, responses *cache.ResponseCache, loc *time.Location) *VConnectHandler {
	return &VConnectHandler{
		base:  newBase(logger, templates, devMode, sessions),
		board: board,
		cache: responses,
		loc:   loc,
	}
}

// HandleBoard serves GET /vconnect.
func (h *VConnectHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	h.showBoard(w, r, http.StatusOK, forms.EventForm{}, nil)
}

// HandlePost handles POST /vconnect. Posting needs no session.
func (h *VConnectHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var form forms.EventForm
	forms.Bind(r.PostForm, &form)

	event, errs, err := h.board.Submit(form, h.loc)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to add event")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if errs != nil {
		h.showBoard(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}

	h.cache.InvalidateBoard(BoardEvents)
	h.logger.Info().Str("id", event.ID).Str("type", string(event.Type)).Msg("event posted")
	SetFlash(w, Flash{Title: "Event Posted!", Message: "Your event has been added to the board."})
	http.Redirect(w, r, "/vconnect", http.StatusFound)
}

func (h *VConnectHandler) showBoard(w http.ResponseWriter, r *http.Request, status int, form forms.EventForm, errs forms.FieldErrors) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	criteria, err := eventCriteria(q, h.loc)
	dateInvalid := err != nil

	data := h.pageData(w, r, store, "vconnect")
	data["Events"] = listing.FilterEvents(h.board.All(), criteria)
	data["Total"] = h.board.Len()
	data["Types"] = models.EventTypes
	data["Query"] = q.Get("q")
	data["Type"] = criteria.Type
	data["Date"] = q.Get("date")
	data["DateInvalid"] = dateInvalid
	data["Filtered"] = q.Get("q") != "" || (criteria.Type != "" && criteria.Type != listing.AllTypes) || q.Get("date") != ""
	data["Form"] = form
	data["Errors"] = errs
	data["FormOpen"] = errs != nil
	h.render(w, status, "vconnect.html", data)
}
