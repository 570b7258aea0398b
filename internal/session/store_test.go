package session

import (
	"context"
	"errors"
	"testing"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/models"
	"github.com/bobmcallan/vibex/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *memory.KVStorage) {
	t.Helper()
	kv := memory.NewKVStorage()
	s := NewStore(NewKVSlot(kv, SlotKey("visitor-1")), common.NewSilentLogger())
	require.NoError(t, s.Hydrate(context.Background()))
	return s, kv
}

func TestDisplayNameFromEmail(t *testing.T) {
	cases := []struct{ email, want string }{
		{"jane.doe@x.com", "Jane Doe"},
		{"bob_123@x.com", "Bob 123"},
		{"alice@example.com", "Alice"},
		{"mary-jane.o'neil@x.com", "Mary Jane O Neil"},
		{"123abc@x.com", "123abc"},
		{"JOHN.smith@x.com", "JOHN Smith"},
		{"no-at-sign", "No At Sign"},
		{"_bob@x.com", "Bob"},
		{"bob__@x.com", "Bob"},
		{"a..b@x.com", "A  B"},
		{"...@x.com", "Guest"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayNameFromEmail(tc.email), tc.email)
	}
}

func TestHydrate_EmptySlotIsNoSession(t *testing.T) {
	s, _ := newTestStore(t)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogin_PersistsDefaults(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	u, err := s.Login(ctx, "jane.doe@x.com")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "jane.doe@x.com", u.Email)
	assert.Equal(t, DefaultAvatarURL, u.AvatarURL)
	assert.Equal(t, DefaultBio, u.Bio)
	assert.Equal(t, DefaultSkills, u.Skills)

	raw, err := kv.Get(ctx, "teamup_user:visitor-1")
	require.NoError(t, err)
	assert.Contains(t, raw, `"name":"Jane Doe"`)
	assert.Contains(t, raw, `"avatarUrl":"https://placehold.co/128x128.png"`)
}

func TestLogin_SurvivesFreshLoad(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "bob_123@x.com")
	require.NoError(t, err)

	fresh := NewStore(NewKVSlot(kv, SlotKey("visitor-1")), common.NewSilentLogger())
	require.NoError(t, fresh.Hydrate(ctx))

	u, ok := fresh.Current()
	require.True(t, ok)
	assert.Equal(t, "Bob 123", u.Name)
}

func TestLogoutThenHydrate_NoSession(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "jane.doe@x.com")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.LoggedIn())

	fresh := NewStore(NewKVSlot(kv, SlotKey("visitor-1")), common.NewSilentLogger())
	require.NoError(t, fresh.Hydrate(ctx))
	assert.False(t, fresh.LoggedIn())

	_, err = kv.Get(ctx, "teamup_user:visitor-1")
	assert.Error(t, err)
}

func TestHydrate_CorruptSnapshotIsClearedSilently(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"{not json", `"just a string"`, `{}`, `[1,2]`} {
		kv := memory.NewKVStorage()
		require.NoError(t, kv.Set(ctx, SlotKey("v"), raw))

		s := NewStore(NewKVSlot(kv, SlotKey("v")), common.NewSilentLogger())
		require.NoError(t, s.Hydrate(ctx), raw)
		assert.False(t, s.LoggedIn(), raw)

		_, err := kv.Get(ctx, SlotKey("v"))
		assert.Error(t, err, "corrupt slot should be cleared: %s", raw)
	}
}

func TestHydrate_NullSnapshotIsNoSession(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStorage()
	require.NoError(t, kv.Set(ctx, SlotKey("v"), "null"))

	s := NewStore(NewKVSlot(kv, SlotKey("v")), common.NewSilentLogger())
	require.NoError(t, s.Hydrate(ctx))
	assert.False(t, s.LoggedIn())

	raw, err := kv.Get(ctx, SlotKey("v"))
	require.NoError(t, err)
	assert.Equal(t, "null", raw)
}

func TestHydrate_OnlyOnce(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, SlotKey("visitor-1"), `{"name":"Late","email":"late@x.com"}`))
	require.NoError(t, s.Hydrate(ctx))
	assert.False(t, s.LoggedIn(), "second hydrate must not reload")
}

func TestUpdateUser_ShallowMerge(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "jane.doe@x.com")
	require.NoError(t, err)

	name := "Jane Q. Doe"
	u, err := s.UpdateUser(ctx, models.UserPatch{Name: &name, Skills: []string{"Go"}})
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", u.Name)
	assert.Equal(t, []string{"Go"}, u.Skills)
	assert.Equal(t, DefaultBio, u.Bio)

	raw, _ := kv.Get(ctx, SlotKey("visitor-1"))
	assert.Contains(t, raw, `"name":"Jane Q. Doe"`)
}

func TestUpdateUser_NoSession(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.UpdateUser(context.Background(), models.UserPatch{})
	assert.ErrorIs(t, err, ErrNoSession)
}

type failingSlot struct{ err error }

func (f failingSlot) Load(context.Context) ([]byte, error) { return nil, f.err }
func (f failingSlot) Save(context.Context, []byte) error   { return f.err }
func (f failingSlot) Clear(context.Context) error          { return f.err }

func TestStorageFailuresPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	s := NewStore(failingSlot{err: boom}, common.NewSilentLogger())
	ctx := context.Background()

	assert.ErrorIs(t, s.Hydrate(ctx), boom)

	_, err := s.Login(ctx, "jane@x.com")
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.LoggedIn(), "failed login must not activate a session")
}
