package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	list []pets.Pet
}

// NewPetRepo crea el repo con la lista fija de la app (pets.Seed).
func NewPetRepo() pets.Repository {
	return NewPetRepoWith(pets.Seed())
}

// NewPetRepoWith permite sembrar otra lista (tests, demos). El orden se respeta.
func NewPetRepoWith(seed []pets.Pet) pets.Repository {
	list := make([]pets.Pet, len(seed))
	copy(list, seed)
	return &petRepo{list: list}
}

func (r *petRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *petRepo) FindByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := pets.FindFirst(r.list, id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}
