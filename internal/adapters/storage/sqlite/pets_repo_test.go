package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/migrations"

	"github.com/stretchr/testify/require"
)

func openMigrated(t *testing.T) *PetsRepo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pets.db")
	require.NoError(t, migrations.Up(migrations.SQLiteURL(path)))

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPetsRepo(db)
}

func TestPetsRepo_ListAll_Seeded(t *testing.T) {
	repo := openMigrated(t)

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, pets.Seed(), list)
}

func TestPetsRepo_FindByID(t *testing.T) {
	repo := openMigrated(t)

	p, err := repo.FindByID(context.Background(), 113321)
	require.NoError(t, err)
	require.Equal(t, 113321, p.ID)
	require.Equal(t, pets.SexFemale, p.Sex)
	require.True(t, p.IsSpayedNeutered)

	_, err = repo.FindByID(context.Background(), 999)
	require.ErrorIs(t, err, pets.ErrNotFound)
}

func TestMigrations_AreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.db")
	require.NoError(t, migrations.Up(migrations.SQLiteURL(path)))
	require.NoError(t, migrations.Up(migrations.SQLiteURL(path)))
}
