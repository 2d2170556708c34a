package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	list []Pet
	err  error
}

func (r *testRepo) ListAll(ctx context.Context) ([]Pet, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]Pet(nil), r.list...), nil
}

func (r *testRepo) FindByID(ctx context.Context, id int) (Pet, error) {
	p, ok := FindFirst(r.list, id)
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func newTestStore(t *testing.T, list []Pet, opts ...StoreOption) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), &testRepo{list: list}, opts...)
	require.NoError(t, err)
	return s
}

// -------------------------
// Tests
// -------------------------

func TestStore_LoadsFromRepository(t *testing.T) {
	s := newTestStore(t, Seed())
	require.Len(t, s.Current(), 8)
	require.Equal(t, 8, s.Len())
}

func TestStore_LoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewStore(context.Background(), &testRepo{err: boom})
	require.ErrorIs(t, err, boom)
}

func TestStore_CurrentIsACopy(t *testing.T) {
	s := newTestStore(t, []Pet{{ID: 1, Name: "Rex"}})

	got := s.Current()
	got[0].Name = "changed"

	p, ok := s.GetPet(1)
	require.True(t, ok)
	require.Equal(t, "Rex", p.Name)
}

func TestStore_Subscribe_ValuesAreCopies(t *testing.T) {
	s := newTestStore(t, []Pet{{ID: 1, Name: "Rex"}})

	sub := s.Subscribe()
	defer sub.Cancel()

	got := receive(t, sub.C)
	got[0].Name = "changed by subscriber"

	p, ok := s.GetPet(1)
	require.True(t, ok)
	require.Equal(t, "Rex", p.Name)

	s.Replace([]Pet{{ID: 2, Name: "Luna"}})
	got = receive(t, sub.C)
	got[0].Name = "changed again"

	require.Equal(t, "Luna", s.Current()[0].Name)
}

func TestStore_Subscribe_EachSubscriberOwnsItsValue(t *testing.T) {
	s := newTestStore(t, nil)

	a := s.Subscribe()
	defer a.Cancel()
	b := s.Subscribe()
	defer b.Cancel()
	receive(t, a.C)
	receive(t, b.C)

	s.Replace([]Pet{{ID: 7, Name: "Milo"}})
	fromA := receive(t, a.C)
	fromB := receive(t, b.C)

	fromA[0].Name = "only in a"
	require.Equal(t, "Milo", fromB[0].Name)
}

func TestStore_GetPet_FirstMatchWithDuplicateIDs(t *testing.T) {
	list := Seed()
	list[0].Breed = "first"
	list[1].Breed = "second"
	s := newTestStore(t, list)

	p, ok := s.GetPet(113321)
	require.True(t, ok)
	require.Equal(t, 113321, p.ID)
	require.Equal(t, "first", p.Breed)

	_, ok = s.GetPet(999)
	require.False(t, ok)
}

func TestStore_GetRandomPet_Empty(t *testing.T) {
	s := newTestStore(t, nil)
	_, ok := s.GetRandomPet()
	require.False(t, ok)
}

func TestStore_GetRandomPet_UsesInjectedSource(t *testing.T) {
	list := []Pet{{ID: 1}, {ID: 2}, {ID: 3}}

	var gotN int
	s := newTestStore(t, list, WithRandom(func(n int) int {
		gotN = n
		return 2
	}))

	p, ok := s.GetRandomPet()
	require.True(t, ok)
	require.Equal(t, 3, p.ID)
	require.Equal(t, 3, gotN)
}

func TestStore_GetRandomPet_AlwaysAMember(t *testing.T) {
	list := []Pet{{ID: 10}, {ID: 20}, {ID: 30}, {ID: 40}}
	s := newTestStore(t, list)

	for i := 0; i < 200; i++ {
		p, ok := s.GetRandomPet()
		require.True(t, ok)
		require.Contains(t, s.Current(), p)
	}
}

func TestStore_Subscribe_ReceivesCurrentThenReplacement(t *testing.T) {
	s := newTestStore(t, []Pet{{ID: 1}})

	sub := s.Subscribe()
	defer sub.Cancel()

	require.Equal(t, []Pet{{ID: 1}}, receive(t, sub.C))

	s.Replace([]Pet{{ID: 2}, {ID: 3}})
	require.Equal(t, []Pet{{ID: 2}, {ID: 3}}, receive(t, sub.C))
}

func TestStore_Subscribe_SlowConsumerSeesLatest(t *testing.T) {
	s := newTestStore(t, []Pet{{ID: 1}})

	sub := s.Subscribe()
	defer sub.Cancel()

	s.Replace([]Pet{{ID: 2}})
	s.Replace([]Pet{{ID: 3}})

	require.Equal(t, []Pet{{ID: 3}}, receive(t, sub.C))
}

func TestStore_Subscribe_CancelClosesChannel(t *testing.T) {
	s := newTestStore(t, nil)

	sub := s.Subscribe()
	require.Equal(t, 1, s.Subscribers())

	sub.Cancel()
	sub.Cancel()
	require.Equal(t, 0, s.Subscribers())

	// drena el valor inicial y luego el canal queda cerrado
	<-sub.C
	_, open := <-sub.C
	require.False(t, open)

	// Replace después de cancelar no entra en pánico
	s.Replace([]Pet{{ID: 9}})
}

func TestStore_Reload(t *testing.T) {
	repo := &testRepo{list: []Pet{{ID: 1}}}
	s, err := NewStore(context.Background(), repo)
	require.NoError(t, err)

	repo.list = []Pet{{ID: 1}, {ID: 2}}
	require.NoError(t, s.Reload(context.Background()))
	require.Len(t, s.Current(), 2)

	repo.err = errors.New("db down")
	require.Error(t, s.Reload(context.Background()))
	require.Len(t, s.Current(), 2)
}

func receive(t *testing.T, ch <-chan []Pet) []Pet {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for store notification")
		return nil
	}
}
