package memory

import (
	"context"
	"testing"

	"pet-adoption/internal/domain/pets"

	"github.com/stretchr/testify/require"
)

func TestPetRepo_SeededWithEightDollies(t *testing.T) {
	repo := NewPetRepo()

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 8)

	p, err := repo.FindByID(context.Background(), 113321)
	require.NoError(t, err)
	require.Equal(t, 113321, p.ID)
	require.Equal(t, "Dolly", p.Name)
}

func TestPetRepo_FindByID_FirstMatchAndNotFound(t *testing.T) {
	repo := NewPetRepoWith([]pets.Pet{
		{ID: 7, Name: "first"},
		{ID: 8, Name: "other"},
		{ID: 7, Name: "second"},
	})

	p, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "first", p.Name)

	_, err = repo.FindByID(context.Background(), 999)
	require.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_ListAll_StableOrderAndCopies(t *testing.T) {
	repo := NewPetRepoWith([]pets.Pet{{ID: 3}, {ID: 1}, {ID: 2}})

	a, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	a[0].ID = 42

	b, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []pets.Pet{{ID: 3}, {ID: 1}, {ID: 2}}, b)
}
