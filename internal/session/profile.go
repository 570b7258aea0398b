package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/bobmcallan/vibex/internal/models"
)

// ProfileState is the mode of the profile page.
type ProfileState int

const (
	Viewing ProfileState = iota
	Editing
)

func (s ProfileState) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// ErrInvalidTransition is returned for a transition the profile page does not
// allow from its current state.
var ErrInvalidTransition = errors.New("invalid profile transition")

// ProfileEditor drives the profile page: viewing -> editing on Edit, and back
// on Cancel (draft discarded) or a successful Save (draft persisted).
type ProfileEditor struct {
	store *Store
	state ProfileState
	draft models.User
}

// NewProfileEditor starts in Viewing. It needs an active session.
func NewProfileEditor(store *Store) (*ProfileEditor, error) {
	if !store.LoggedIn() {
		return nil, ErrNoSession
	}
	return &ProfileEditor{store: store, state: Viewing}, nil
}

// State returns the current mode.
func (e *ProfileEditor) State() ProfileState {
	return e.state
}

// User returns the persisted user.
func (e *ProfileEditor) User() models.User {
	u, _ := e.store.Current()
	return u
}

// Draft returns the values being edited, or the persisted user when viewing.
func (e *ProfileEditor) Draft() models.User {
	if e.state == Editing {
		return e.draft
	}
	return e.User()
}

// Edit enters editing with a draft seeded from the persisted user.
func (e *ProfileEditor) Edit() error {
	if e.state != Viewing {
		return fmt.Errorf("%w: edit while %s", ErrInvalidTransition, e.state)
	}
	e.draft = e.User()
	e.state = Editing
	return nil
}

// SetDraft replaces the unsaved values.
func (e *ProfileEditor) SetDraft(u models.User) error {
	if e.state != Editing {
		return fmt.Errorf("%w: change draft while %s", ErrInvalidTransition, e.state)
	}
	e.draft = u
	return nil
}

// Cancel discards the draft and returns to viewing.
func (e *ProfileEditor) Cancel() error {
	if e.state != Editing {
		return fmt.Errorf("%w: cancel while %s", ErrInvalidTransition, e.state)
	}
	e.draft = models.User{}
	e.state = Viewing
	return nil
}

// Save persists patch through the Store and returns to viewing. On failure
// the editor stays in editing.
func (e *ProfileEditor) Save(ctx context.Context, patch models.UserPatch) (models.User, error) {
	if e.state != Editing {
		return models.User{}, fmt.Errorf("%w: save while %s", ErrInvalidTransition, e.state)
	}
	u, err := e.store.UpdateUser(ctx, patch)
	if err != nil {
		return models.User{}, err
	}
	e.draft = models.User{}
	e.state = Viewing
	return u, nil
}
