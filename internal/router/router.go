package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mem "pet-adoption/internal/adapters/storage/memory"
	_ "pet-adoption/internal/docs"
	"pet-adoption/internal/domain/navigation"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, se arma un store sobre Pets.
	Store *pets.Store

	// Opcional: repo para el store por defecto; si no viene, la lista fija in-memory.
	Pets pets.Repository

	// Opcional: si no viene, sesiones in-memory.
	Sessions navigation.Repository

	// Opcional: 0 usa navigation.DefaultSessionTTL.
	SessionTTL time.Duration

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		repo := opts.Pets
		if repo == nil {
			repo = mem.NewPetRepo()
		}
		var err error
		store, err = pets.NewStore(context.Background(), repo, pets.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("build pet store: %w", err)
		}
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = mem.NewSessionRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	navSvc := navigation.NewService(
		sessions,
		store,
		log.With(map[string]any{"component": "navigation"}),
		navigation.WithSessionTTL(opts.SessionTTL),
	)

	pets.RegisterRoutes(r, store, log)
	navigation.RegisterRoutes(r, navSvc, store)

	return r, nil
}
