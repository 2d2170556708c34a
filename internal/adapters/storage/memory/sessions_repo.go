package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/domain/navigation"
)

type sessionRepo struct {
	mu   sync.RWMutex
	byID map[string]*navigation.Session
}

// NewSessionRepo: las sesiones viven solo en memoria (no sobreviven un restart).
func NewSessionRepo() navigation.Repository {
	return &sessionRepo{
		byID: make(map[string]*navigation.Session),
	}
}

func (r *sessionRepo) Create(ctx context.Context, s *navigation.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil || strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("session already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*navigation.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, navigation.ErrNotFound
	}
	return s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return navigation.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *sessionRepo) PurgeIdle(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.byID {
		if s.LastUsed().Before(cutoff) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
