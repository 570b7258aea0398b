package listing

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bobmcallan/vibex/internal/models"
)

var (
	// ErrDuplicateID is returned when a record id is already on the board.
	ErrDuplicateID = errors.New("duplicate listing id")
	// ErrNoAuthor is returned for a team request submitted without a session.
	ErrNoAuthor = errors.New("team request needs an author")
)

// TeamRequestBoard is the in-memory HackUp collection. Records are only ever
// appended, so collection order is insertion order.
type TeamRequestBoard struct {
	mu    sync.RWMutex
	items []models.TeamRequest
	ids   map[string]struct{}
}

// NewTeamRequestBoard seeds a board, keeping seed order.
func NewTeamRequestBoard(seed []models.TeamRequest) (*TeamRequestBoard, error) {
	b := &TeamRequestBoard{ids: make(map[string]struct{}, len(seed))}
	for _, r := range seed {
		if err := b.add(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *TeamRequestBoard) add(r models.TeamRequest) error {
	if _, ok := b.ids[r.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	b.ids[r.ID] = struct{}{}
	b.items = append(b.items, r)
	return nil
}

// Append adds r at the end of the board.
func (b *TeamRequestBoard) Append(r models.TeamRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.add(r)
}

// All returns a copy of the collection in board order.
func (b *TeamRequestBoard) All() []models.TeamRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.TeamRequest(nil), b.items...)
}

// Len returns the number of records.
func (b *TeamRequestBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// Filter applies c to a snapshot of the board.
func (b *TeamRequestBoard) Filter(c TeamRequestCriteria) []models.TeamRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterTeamRequests(b.items, c)
}

// EventBoard is the in-memory VConnect collection. The seed keeps its order;
// every Prepend re-sorts the whole board newest first.
type EventBoard struct {
	mu    sync.RWMutex
	items []models.CommunityEvent
	ids   map[string]struct{}
}

// NewEventBoard seeds a board, keeping seed order.
func NewEventBoard(seed []models.CommunityEvent) (*EventBoard, error) {
	b := &EventBoard{ids: make(map[string]struct{}, len(seed))}
	for _, e := range seed {
		if _, ok := b.ids[e.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if !e.Type.Valid() {
			return nil, fmt.Errorf("event %s: invalid type %q", e.ID, e.Type)
		}
		b.ids[e.ID] = struct{}{}
		b.items = append(b.items, e)
	}
	return b, nil
}

// Prepend puts e first and sorts the board descending by date. Events on the
// same instant keep their relative order, so e stays ahead of its peers.
func (b *EventBoard) Prepend(e models.CommunityEvent) error {
	if !e.Type.Valid() {
		return fmt.Errorf("event %s: invalid type %q", e.ID, e.Type)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.ids[e.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	items := make([]models.CommunityEvent, 0, len(b.items)+1)
	items = append(items, e)
	items = append(items, b.items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	b.ids[e.ID] = struct{}{}
	b.items = items
	return nil
}

// All returns a copy of the collection in board order.
func (b *EventBoard) All() []models.CommunityEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.CommunityEvent(nil), b.items...)
}

// Len returns the number of records.
func (b *EventBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// Filter applies c to a snapshot of the board.
func (b *EventBoard) Filter(c EventCriteria) []models.CommunityEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterEvents(b.items, c)
}
