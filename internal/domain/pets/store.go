package pets

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"pet-adoption/internal/platform/logger"

	"github.com/google/uuid"
)

// Store mantiene la lista actual de mascotas y avisa a los suscriptores
// cada vez que se reemplaza. Es el único que escribe la lista y siempre la
// reemplaza completa (nunca la muta en el lugar).
type Store struct {
	repo Repository
	log  logger.Logger
	intn func(n int) int

	mu   sync.RWMutex
	pets []Pet
	subs map[string]chan []Pet
}

type StoreOption func(*Store)

// WithRandom inyecta la fuente de azar de GetRandomPet.
// intn(n) debe devolver un valor en [0, n).
func WithRandom(intn func(n int) int) StoreOption {
	return func(s *Store) {
		if intn != nil {
			s.intn = intn
		}
	}
}

func WithLogger(l logger.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore crea el store y carga la lista inicial desde el repo.
func NewStore(ctx context.Context, repo Repository, opts ...StoreOption) (*Store, error) {
	s := &Store{
		repo: repo,
		log:  logger.Nop(),
		intn: rand.IntN,
		subs: make(map[string]chan []Pet),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Current devuelve una copia de la lista actual.
func (s *Store) Current() []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePets(s.pets)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pets)
}

// GetPet busca sobre la lista que tiene el store (primera coincidencia).
func (s *Store) GetPet(id int) (Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindFirst(s.pets, id)
}

// GetRandomPet elige un índice uniforme en [0, len). Sin mascotas => false.
func (s *Store) GetRandomPet() (Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.pets) == 0 {
		return Pet{}, false
	}
	return s.pets[s.intn(len(s.pets))], true
}

// Reload relee el repo y reemplaza la lista.
func (s *Store) Reload(ctx context.Context) error {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load pets: %w", err)
	}

	if dups := DuplicateIDs(list); len(dups) > 0 {
		// Se toleran: las búsquedas devuelven la primera coincidencia.
		s.log.Warn("duplicate pet ids", map[string]any{
			"ids":   dups,
			"count": len(list),
		})
	}

	s.Replace(list)
	return nil
}

// Replace cambia la lista entera y notifica a los suscriptores.
func (s *Store) Replace(list []Pet) {
	next := clonePets(list)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pets = next
	// cada suscriptor recibe su propia copia
	for _, ch := range s.subs {
		offerLatest(ch, clonePets(next))
	}

	s.log.Debug("pets replaced", map[string]any{
		"count":       len(next),
		"subscribers": len(s.subs),
	})
}

// Subscription recibe el valor actual apenas se crea y luego cada reemplazo.
// Si el consumidor se atrasa solo ve el último valor.
type Subscription struct {
	ID string
	C  <-chan []Pet

	once   sync.Once
	cancel func()
}

// Cancel da de baja la suscripción y cierra C. Se puede llamar más de una vez.
func (sub *Subscription) Cancel() {
	sub.once.Do(sub.cancel)
}

func (s *Store) Subscribe() *Subscription {
	id := uuid.NewString()
	ch := make(chan []Pet, 1)

	s.mu.Lock()
	s.subs[id] = ch
	ch <- clonePets(s.pets)
	s.mu.Unlock()

	return &Subscription{
		ID: id,
		C:  ch,
		cancel: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
		},
	}
}

func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// offerLatest deja en el canal (cap 1) el valor más nuevo sin bloquear.
// Se llama con s.mu tomado, así que no hay otro escritor en paralelo.
func offerLatest(ch chan []Pet, v []Pet) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

func clonePets(in []Pet) []Pet {
	out := make([]Pet, len(in))
	copy(out, in)
	return out
}
