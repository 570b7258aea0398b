package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/interfaces"
	"github.com/google/uuid"
)

// ManagerConfig configures the visitor cookie.
type ManagerConfig struct {
	Secret     []byte
	TTL        time.Duration
	CookieName string
}

// Manager maps requests to per-visitor Stores. The visitor id travels in a
// signed cookie; the user snapshot lives in the key-value storage.
type Manager struct {
	kv         interfaces.KeyValueStorage
	secret     []byte
	ttl        time.Duration
	cookieName string
	logger     *common.Logger
	now        func() time.Time
}

// NewManager creates a manager. An empty secret is replaced with a random
// one, so cookies do not survive a restart.
func NewManager(kv interfaces.KeyValueStorage, cfg ManagerConfig, logger *common.Logger) *Manager {
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		rand.Read(secret)
		logger.Warn().Msg("No session secret configured, using an ephemeral one")
	}
	name := cfg.CookieName
	if name == "" {
		name = "vibex_session"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	return &Manager{
		kv:         kv,
		secret:     secret,
		ttl:        ttl,
		cookieName: name,
		logger:     logger,
		now:        time.Now,
	}
}

// CookieName returns the name of the visitor cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// VisitorID returns the visitor id carried by r, if the cookie verifies.
func (m *Manager) VisitorID(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	id, err := ParseToken(c.Value, m.secret, m.now())
	if err != nil {
		m.logger.Debug().Str("error", err.Error()).Msg("Ignoring invalid visitor cookie")
		return "", false
	}
	return id, true
}

// Open returns the hydrated Store of the visitor behind r. A visitor without a
// valid cookie gets a new id and a cookie on w.
func (m *Manager) Open(w http.ResponseWriter, r *http.Request) (*Store, error) {
	id, ok := m.VisitorID(r)
	if !ok {
		id = uuid.New().String()
		if err := m.setCookie(w, id); err != nil {
			return nil, err
		}
	}
	return m.OpenVisitor(r.Context(), id)
}

// OpenVisitor returns the hydrated Store of a known visitor id.
func (m *Manager) OpenVisitor(ctx context.Context, visitorID string) (*Store, error) {
	store := NewStore(NewKVSlot(m.kv, SlotKey(visitorID)), m.logger)
	if err := store.Hydrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// CountSessions returns the number of persisted user snapshots. Other keys
// sharing the storage are ignored.
func (m *Manager) CountSessions(ctx context.Context) (int, error) {
	all, err := m.kv.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	n := 0
	for key := range all {
		if strings.HasPrefix(key, SlotPrefix+":") {
			n++
		}
	}
	return n, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, visitorID string) error {
	token, err := IssueToken(visitorID, m.secret, m.ttl, m.now())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
