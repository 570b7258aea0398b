package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/bobmcallan/vibex/internal/cache"
	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/listing"
	"github.com/bobmcallan/vibex/internal/session"
)

// ListingAPIHandler serves the boards as JSON. Responses are cached per
// normalised query until the board changes or the entry expires.
type ListingAPIHandler struct {
	logger   *common.Logger
	requests *listing.TeamRequestBoard
	events   *listing.EventBoard
	cache    *cache.ResponseCache
	loc      *time.Location
	now      func() time.Time
}

// NewListingAPIHandler creates a new listing API handler.
func NewListingAPIHandler(logger *common.Logger, requests *listing.TeamRequestBoard, events *listing.EventBoard, responses *cache.ResponseCache, loc *time.Location) *ListingAPIHandler {
	return &ListingAPIHandler{
		logger:   logger,
		requests: requests,
		events:   events,
		cache:    responses,
		loc:      loc,
		now:      time.Now,
	}
}

// HandleRequests serves GET /api/requests?q=&skill=&date=&window=.
func (h *ListingAPIHandler) HandleRequests(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	now := h.now().In(h.loc)
	key := requestsCacheKey(q, now)
	if h.serveCached(w, key) {
		return
	}

	criteria, err := teamRequestCriteria(q, now, h.loc)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	all := h.requests.All()
	found := listing.FilterTeamRequests(all, criteria)

	h.writeAndCache(w, key, map[string]interface{}{
		"requests": found,
		"count":    len(found),
		"total":    len(all),
	})
}

// HandleEvents serves GET /api/events?q=&type=&date=.
func (h *ListingAPIHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	key := cache.MakeKey(BoardEvents, q)
	if h.serveCached(w, key) {
		return
	}

	criteria, err := eventCriteria(q, h.loc)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	all := h.events.All()
	found := listing.FilterEvents(all, criteria)

	h.writeAndCache(w, key, map[string]interface{}{
		"events": found,
		"count":  len(found),
		"total":  len(all),
	})
}

// requestsCacheKey keys a team request query. Weekend and month windows are
// relative to today, so their keys carry the local calendar day.
func requestsCacheKey(q url.Values, now time.Time) string {
	if listing.ParseWindow(q.Get("window")) == listing.WindowAnytime {
		return cache.MakeKey(BoardRequests, q)
	}
	keyed := url.Values{}
	for k, vs := range q {
		keyed[k] = vs
	}
	keyed.Set("day", now.Format("2006-01-02"))
	return cache.MakeKey(BoardRequests, keyed)
}

func (h *ListingAPIHandler) serveCached(w http.ResponseWriter, key string) bool {
	resp, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	for k, vs := range resp.Headers {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("X-Cache", "HIT")
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
	return true
}

func (h *ListingAPIHandler) writeAndCache(w http.ResponseWriter, key string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("failed to encode listing")
		WriteError(w, http.StatusInternalServerError, "failed to encode listing")
		return
	}
	body = append(body, '\n')

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	h.cache.Set(key, &cache.CachedResponse{StatusCode: http.StatusOK, Headers: headers, Body: body})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// SessionAPIHandler reports the visitor's session without issuing a cookie.
type SessionAPIHandler struct {
	logger   *common.Logger
	sessions *session.Manager
}

// NewSessionAPIHandler creates a new session API handler.
func NewSessionAPIHandler(logger *common.Logger, sessions *session.Manager) *SessionAPIHandler {
	return &SessionAPIHandler{logger: logger, sessions: sessions}
}

// ServeHTTP handles GET /api/session.
func (h *SessionAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	resp := map[string]interface{}{"loggedIn": false}
	id, ok := h.sessions.VisitorID(r)
	if !ok {
		WriteJSON(w, http.StatusOK, resp)
		return
	}

	store, err := h.sessions.OpenVisitor(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to open session")
		WriteError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	if u, ok := store.Current(); ok {
		resp["loggedIn"] = true
		resp["user"] = u
	}
	WriteJSON(w, http.StatusOK, resp)
}
