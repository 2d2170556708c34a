package pets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, store *Store, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(store))
		pr.Get("/random", randomPetHandler(store))
		pr.Get("/stream", streamPetsHandler(store, log))
		pr.Post("/reload", reloadPetsHandler(store, log))
		pr.Get("/{petID}", getPetHandler(store))
	})
}

// PetResponse es la representación JSON de una mascota, con los textos ya armados.
type PetResponse struct {
	ID               int    `json:"id"`
	Photo            string `json:"photo"`
	Name             string `json:"name"`
	Sex              Sex    `json:"sex"`
	IsSpayedNeutered bool   `json:"is_spayed_neutered"`
	Breed            string `json:"breed"`
	AgeYear          int    `json:"age_year"`
	AgeMonth         int    `json:"age_month"`

	SexLabel string `json:"sex_label"`
	AgeLabel string `json:"age_label,omitempty"`
}

type reloadResponse struct {
	Count int `json:"count"`
}

// listPetsHandler godoc
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Success  200 {array} pets.PetResponse
// @Router   /pets [get]
func listPetsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toPetResponses(store.Current()))
	}
}

// getPetHandler godoc
// @Summary  Get a pet by id (first match)
// @Tags     pets
// @Produce  json
// @Param    petID path int true "Pet ID"
// @Success  200 {object} pets.PetResponse
// @Failure  400 {string} string "invalid pet id"
// @Failure  404 {string} string "pet not found"
// @Router   /pets/{petID} [get]
func getPetHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		p, ok := store.GetPet(id)
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, ToPetResponse(p))
	}
}

// randomPetHandler godoc
// @Summary  Get a random pet
// @Tags     pets
// @Produce  json
// @Success  200 {object} pets.PetResponse
// @Failure  404 {string} string "no pets available"
// @Router   /pets/random [get]
func randomPetHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := store.GetRandomPet()
		if !ok {
			http.Error(w, "no pets available", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, ToPetResponse(p))
	}
}

// reloadPetsHandler godoc
// @Summary  Reload pets from the repository and notify subscribers
// @Tags     pets
// @Produce  json
// @Success  200 {object} pets.reloadResponse
// @Failure  500 {string} string "internal error"
// @Router   /pets/reload [post]
func reloadPetsHandler(store *Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Reload(r.Context()); err != nil {
			log.Error("reload pets failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, reloadResponse{Count: store.Len()})
	}
}

// streamPetsHandler godoc
// @Summary  Stream the pet list (Server-Sent Events)
// @Description Sends the current list right away and again on every replacement.
// @Tags     pets
// @Produce  text/event-stream
// @Success  200 {array} pets.PetResponse
// @Router   /pets/stream [get]
func streamPetsHandler(store *Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		// el stream no tiene que cortarse por el WriteTimeout del server
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

		sub := store.Subscribe()
		defer sub.Cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		log.Debug("pets stream opened", map[string]any{
			"subscription": sub.ID,
			"subscribers":  store.Subscribers(),
		})

		for {
			select {
			case <-r.Context().Done():
				log.Debug("pets stream closed", map[string]any{"subscription": sub.ID})
				return
			case list, ok := <-sub.C:
				if !ok {
					return
				}
				if err := writeEvent(w, "pets", toPetResponses(list)); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func ToPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:               p.ID,
		Photo:            string(p.Photo),
		Name:             p.Name,
		Sex:              p.Sex,
		IsSpayedNeutered: p.IsSpayedNeutered,
		Breed:            p.Breed,
		AgeYear:          p.AgeYear,
		AgeMonth:         p.AgeMonth,
		SexLabel:         p.SexLabel(),
		AgeLabel:         p.AgeLabel(),
	}
}

func toPetResponses(list []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPetResponse(p))
	}
	return out
}

// ParseID convierte el id de la URL/ruta a int.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: pet id %q", ErrInvalidInput, raw)
	}
	return id, nil
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	return err
}

// writeJSON está duplicado en los handlers de pets y navigation a propósito;
// todavía no justifica un paquete compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
