package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repository es la fuente de las mascotas.
// ListAll devuelve siempre el mismo orden. FindByID devuelve la primera
// coincidencia o ErrNotFound (ausencia esperada, no falla).
type Repository interface {
	ListAll(ctx context.Context) ([]Pet, error)
	FindByID(ctx context.Context, id int) (Pet, error)
}

// FindFirst recorre la lista en orden y devuelve la primera mascota con ese id.
// O(n) a propósito: la lista es chica.
func FindFirst(list []Pet, id int) (Pet, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}

// DuplicateIDs devuelve los ids que aparecen más de una vez, en orden de primera aparición.
func DuplicateIDs(list []Pet) []int {
	seen := make(map[int]int, len(list))
	out := make([]int, 0)
	for _, p := range list {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			out = append(out, p.ID)
		}
	}
	return out
}

// Seed es la lista fija con la que arranca la app: ocho copias de Dolly,
// todas con el mismo id.
func Seed() []Pet {
	dolly := Pet{
		ID:               113321,
		Photo:            "animal_dog_pet_cute",
		Name:             "Dolly",
		Sex:              SexFemale,
		IsSpayedNeutered: true,
		Breed:            "Shepard Mix",
		AgeYear:          6,
		AgeMonth:         6,
	}

	out := make([]Pet, 8)
	for i := range out {
		out[i] = dolly
	}
	return out
}
