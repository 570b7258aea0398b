package handlers

import (
	"net/http"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/session"
)

// HealthHandler handles health check requests. In dev mode it also reports
// how many visitor sessions are persisted.
type HealthHandler struct {
	logger   *common.Logger
	sessions *session.Manager
	devMode  bool
}

// NewHealthHandler creates a new health handler. sessions may be nil.
func NewHealthHandler(logger *common.Logger, sessions *session.Manager, devMode bool) *HealthHandler {
	return &HealthHandler{logger: logger, sessions: sessions, devMode: devMode}
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	body := map[string]interface{}{
		"status": "ok",
	}
	if h.devMode && h.sessions != nil {
		n, err := h.sessions.CountSessions(r.Context())
		if err != nil {
			h.logger.Warn().Err(err).Msg("failed to count sessions")
		} else {
			body["sessions"] = n
		}
	}

	WriteJSON(w, http.StatusOK, body)
}
