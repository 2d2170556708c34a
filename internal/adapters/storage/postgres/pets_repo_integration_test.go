package postgres

import (
	"context"
	"os"
	"testing"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/migrations"

	"github.com/stretchr/testify/require"
)

// Requiere una base descartable: PETADOPT_TEST_PG_DSN=postgres://...
func TestPetsRepo_Integration(t *testing.T) {
	dsn := os.Getenv("PETADOPT_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("PETADOPT_TEST_PG_DSN not set")
	}

	url, err := migrations.PostgresURL(dsn)
	require.NoError(t, err)
	require.NoError(t, migrations.Up(url))

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPetsRepo(db)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
	require.Equal(t, pets.Seed(), list)

	p, err := repo.FindByID(ctx, 113321)
	require.NoError(t, err)
	require.Equal(t, "Dolly", p.Name)

	_, err = repo.FindByID(ctx, 999)
	require.ErrorIs(t, err, pets.ErrNotFound)
}
