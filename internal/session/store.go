// Package session owns the mock "current user" of a visitor: a User record
// persisted as a JSON snapshot in one storage slot.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/models"
)

const (
	DefaultAvatarURL = "https://placehold.co/128x128.png"
	DefaultBio       = "Aspiring innovator and tech enthusiast, passionate about building the future, one line of code at a time. Ready to collaborate and create something amazing!"
	fallbackName     = "Guest"
)

// DefaultSkills are given to every freshly logged-in user.
var DefaultSkills = []string{"React", "Next.js", "Tailwind CSS", "TypeScript", "GenAI"}

// ErrNoSession is returned by operations that need a logged-in user.
var ErrNoSession = errors.New("no active session")

// Store is the session context of one visitor. It is safe for concurrent use;
// writes are last-write-wins against the slot.
type Store struct {
	slot   Slot
	logger *common.Logger

	mu       sync.Mutex
	hydrated bool
	user     *models.User
}

// NewStore creates a store over slot. Call Hydrate before reading it.
func NewStore(slot Slot, logger *common.Logger) *Store {
	return &Store{slot: slot, logger: logger}
}

// Hydrate loads the persisted snapshot once. An empty slot means no session.
// A snapshot that does not parse into a user is cleared and also means no
// session; only storage failures are returned.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}

	data, err := s.slot.Load(ctx)
	if errors.Is(err, ErrEmptySlot) {
		s.hydrated = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if string(bytes.TrimSpace(data)) == "null" {
		s.hydrated = true
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.Email == "" {
		s.logger.Warn().Str("reason", describeCorruption(err)).Msg("Discarding unreadable session snapshot")
		if cerr := s.slot.Clear(ctx); cerr != nil {
			s.logger.Error().Err(cerr).Msg("Failed to clear unreadable session snapshot")
		}
		s.hydrated = true
		return nil
	}

	s.user = &u
	s.hydrated = true
	return nil
}

func describeCorruption(err error) string {
	if err != nil {
		return err.Error()
	}
	return "snapshot has no email"
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// LoggedIn reports whether a user is active.
func (s *Store) LoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// Login creates the mock user for email, replacing any current user. There is
// no credential check.
func (s *Store) Login(ctx context.Context, email string) (models.User, error) {
	u := models.User{
		Name:      DisplayNameFromEmail(email),
		Email:     strings.TrimSpace(email),
		AvatarURL: DefaultAvatarURL,
		Bio:       DefaultBio,
		Skills:    append([]string(nil), DefaultSkills...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, u); err != nil {
		return models.User{}, err
	}
	s.user = &u
	s.hydrated = true
	return u, nil
}

// Logout forgets the user and clears the slot.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.hydrated = true
	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// UpdateUser merges patch into the current user and persists the result.
func (s *Store) UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, ErrNoSession
	}

	u := patch.Apply(*s.user)
	if err := s.persist(ctx, u); err != nil {
		return models.User{}, err
	}
	s.user = &u
	return u, nil
}

// persist writes the full snapshot. Caller holds mu.
func (s *Store) persist(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// DisplayNameFromEmail derives a display name from the local part of email:
// every character other than an ASCII letter or digit becomes a space and the
// first letter of each word is upper-cased ("jane.doe@x.com" -> "Jane Doe").
func DisplayNameFromEmail(email string) string {
	local := strings.TrimSpace(email)
	if i := strings.IndexByte(local, '@'); i >= 0 {
		local = local[:i]
	}

	var out strings.Builder
	out.Grow(len(local))
	atWordStart := true
	for _, r := range local {
		if !isASCIIAlnum(r) {
			out.WriteByte(' ')
			atWordStart = true
			continue
		}
		if atWordStart && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out.WriteRune(r)
		atWordStart = false
	}

	name := strings.TrimSpace(out.String())
	if name == "" {
		return fallbackName
	}
	return name
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
