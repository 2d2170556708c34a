package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const selectPets = `
	SELECT
		id, photo, name, sex,
		is_spayed_neutered, breed,
		age_year, age_month
	FROM pets
`

// ListAll devuelve las mascotas en el orden de carga (position).
func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, selectPets+` ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// FindByID: el id no es único, gana la primera fila por position.
func (r *PetsRepo) FindByID(ctx context.Context, id int) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, selectPets+`
		WHERE id = $1
		ORDER BY position ASC
		LIMIT 1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p     pets.Pet
		photo string
		sex   string
	)
	if err := s.Scan(
		&p.ID,
		&photo,
		&p.Name,
		&sex,
		&p.IsSpayedNeutered,
		&p.Breed,
		&p.AgeYear,
		&p.AgeMonth,
	); err != nil {
		return pets.Pet{}, err
	}

	parsed, err := pets.ParseSex(sex)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("pet %d: %w", p.ID, err)
	}
	p.Sex = parsed
	p.Photo = pets.PhotoRef(photo)
	return p, nil
}
