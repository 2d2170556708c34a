package memory

import (
	"context"
	"testing"
	"time"

	"pet-adoption/internal/domain/navigation"
	"pet-adoption/internal/domain/pets"

	"github.com/stretchr/testify/require"
)

func TestSessionRepo_PurgeIdle(t *testing.T) {
	ctx := context.Background()
	store, err := pets.NewStore(ctx, NewPetRepo())
	require.NoError(t, err)

	repo := NewSessionRepo()
	svc := navigation.NewService(repo, store, nil)

	var ids []string
	for i := 0; i < 2; i++ {
		st, err := svc.Open(ctx)
		require.NoError(t, err)
		ids = append(ids, st.SessionID)
	}

	n, err := repo.PurgeIdle(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = repo.PurgeIdle(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	for _, id := range ids {
		_, err := repo.GetByID(ctx, id)
		require.ErrorIs(t, err, navigation.ErrNotFound)
	}
}
