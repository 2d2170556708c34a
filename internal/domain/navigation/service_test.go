package navigation

import (
	"context"
	"testing"
	"time"

	"pet-adoption/internal/domain/pets"

	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID map[string]*Session
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]*Session{}}
}

func (r *testRepo) Create(ctx context.Context, s *Session) error {
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (*Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) PurgeIdle(ctx context.Context, cutoff time.Time) (int, error) {
	n := 0
	for id, s := range r.byID {
		if s.LastUsed().Before(cutoff) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type listReader []pets.Pet

func (l listReader) Current() []pets.Pet { return l }

func (l listReader) GetPet(id int) (pets.Pet, bool) { return pets.FindFirst(l, id) }

// -------------------------
// Tests
// -------------------------

func TestService_SelectThenBack(t *testing.T) {
	svc := NewService(newTestRepo(), listReader(pets.Seed()), nil)
	ctx := context.Background()

	st, err := svc.Open(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, st.SessionID)
	require.Equal(t, ListScreen(), st.Screen)
	require.False(t, st.CanGoBack)

	list, ok := st.View.(ListView)
	require.True(t, ok)
	require.Len(t, list.Pets, 8)

	st, err = svc.Select(ctx, st.SessionID, 113321)
	require.NoError(t, err)
	require.Equal(t, DetailScreen(113321), st.Screen)
	require.True(t, st.CanGoBack)

	detail, ok := st.View.(DetailView)
	require.True(t, ok)
	require.True(t, detail.Found)
	require.Equal(t, "Dolly", detail.Title)

	st, err = svc.Back(ctx, st.SessionID)
	require.NoError(t, err)
	require.Equal(t, ListScreen(), st.Screen)
	require.False(t, st.CanGoBack)
}

func TestService_SelectUnknownPetRendersNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), listReader(pets.Seed()), nil)
	ctx := context.Background()

	st, err := svc.Open(ctx)
	require.NoError(t, err)

	st, err = svc.Select(ctx, st.SessionID, 999)
	require.NoError(t, err)
	require.Equal(t, DetailScreen(999), st.Screen)

	detail := st.View.(DetailView)
	require.False(t, detail.Found)
	require.Nil(t, detail.Pet)
	require.Equal(t, NotFoundMessage, detail.Message)
	require.Equal(t, pets.DefaultTitle, detail.Title)
}

func TestService_UnknownSession(t *testing.T) {
	svc := NewService(newTestRepo(), listReader(nil), nil)
	ctx := context.Background()

	_, err := svc.State(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Select(ctx, "  ", 1)
	require.ErrorIs(t, err, ErrInvalidInput)

	require.ErrorIs(t, svc.Close(ctx, "nope"), ErrNotFound)
}

func TestService_Close(t *testing.T) {
	svc := NewService(newTestRepo(), listReader(nil), nil)
	ctx := context.Background()

	st, err := svc.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Close(ctx, st.SessionID))

	_, err = svc.State(ctx, st.SessionID)
	require.ErrorIs(t, err, ErrNotFound)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestService_IdleSessionExpires(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, listReader(pets.Seed()), nil, WithSessionTTL(10*time.Minute))
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.now
	ctx := context.Background()

	st, err := svc.Open(ctx)
	require.NoError(t, err)

	// usarla renueva el ttl
	clock.advance(9 * time.Minute)
	_, err = svc.Select(ctx, st.SessionID, 113321)
	require.NoError(t, err)

	clock.advance(9 * time.Minute)
	_, err = svc.State(ctx, st.SessionID)
	require.NoError(t, err)

	clock.advance(11 * time.Minute)
	_, err = svc.State(ctx, st.SessionID)
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, repo.byID)
}

func TestService_OpenPurgesIdleSessions(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, listReader(nil), nil, WithSessionTTL(10*time.Minute))
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.now
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Open(ctx)
		require.NoError(t, err)
	}
	require.Len(t, repo.byID, 3)

	clock.advance(11 * time.Minute)
	fresh, err := svc.Open(ctx)
	require.NoError(t, err)

	require.Len(t, repo.byID, 1)
	require.Contains(t, repo.byID, fresh.SessionID)
}

func TestService_PurgeExpired(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, listReader(nil), nil, WithSessionTTL(time.Minute))
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.now
	ctx := context.Background()

	old, err := svc.Open(ctx)
	require.NoError(t, err)

	clock.advance(50 * time.Second)
	kept, err := svc.Open(ctx)
	require.NoError(t, err)

	clock.advance(20 * time.Second)
	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.NotContains(t, repo.byID, old.SessionID)
	require.Contains(t, repo.byID, kept.SessionID)
}
