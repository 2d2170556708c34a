package remote

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/httpclient"
)

// PetsClient habla con un server pet-adoption ya levantado. Implementa
// pets.Repository, así el CLI puede armar un Store sobre la API remota.
type PetsClient struct {
	http *httpclient.Client
}

var _ pets.Repository = (*PetsClient)(nil)

func NewPetsClient(baseURL string, timeout time.Duration) (*PetsClient, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &PetsClient{http: c}, nil
}

func (c *PetsClient) ListAll(ctx context.Context) ([]pets.Pet, error) {
	var out []pets.PetResponse
	if err := c.http.GetJSON(ctx, "/pets", &out); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	list := make([]pets.Pet, 0, len(out))
	for _, r := range out {
		list = append(list, toPet(r))
	}
	return list, nil
}

func (c *PetsClient) FindByID(ctx context.Context, id int) (pets.Pet, error) {
	return c.getOne(ctx, "/pets/"+strconv.Itoa(id))
}

// Random pide una mascota al azar al server.
func (c *PetsClient) Random(ctx context.Context) (pets.Pet, error) {
	return c.getOne(ctx, "/pets/random")
}

// Reload pide al server que recargue la lista desde su repo.
func (c *PetsClient) Reload(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.http.PostJSON(ctx, "/pets/reload", nil, &out); err != nil {
		return 0, fmt.Errorf("reload pets: %w", err)
	}
	return out.Count, nil
}

func (c *PetsClient) getOne(ctx context.Context, path string) (pets.Pet, error) {
	var out pets.PetResponse
	if err := c.http.GetJSON(ctx, path, &out); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get %s: %w", path, err)
	}
	return toPet(out), nil
}

func toPet(r pets.PetResponse) pets.Pet {
	return pets.Pet{
		ID:               r.ID,
		Photo:            pets.PhotoRef(r.Photo),
		Name:             r.Name,
		Sex:              r.Sex,
		IsSpayedNeutered: r.IsSpayedNeutered,
		Breed:            r.Breed,
		AgeYear:          r.AgeYear,
		AgeMonth:         r.AgeMonth,
	}
}
