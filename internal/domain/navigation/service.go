package navigation

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/platform/logger"

	"github.com/google/uuid"
)

// DefaultSessionTTL es el tiempo sin uso tras el cual una sesión expira.
const DefaultSessionTTL = 30 * time.Minute

// Session junta un Controller con su host (BackStack).
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastUsed time.Time
	stack    *BackStack
	ctrl     *Controller
}

func newSession(id string, now time.Time) *Session {
	stack := NewBackStack()
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastUsed:  now,
		stack:     stack,
		ctrl:      NewController(stack),
	}
}

// LastUsed es la última vez que la sesión se leyó o navegó.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	if now.After(s.lastUsed) {
		s.lastUsed = now
	}
	s.mu.Unlock()
}

// State es la foto de una sesión: pantalla actual y su vista.
type State struct {
	SessionID string
	Screen    Screen
	CanGoBack bool
	View      any
}

type Service struct {
	repo Repository
	pets PetReader
	log  logger.Logger
	now  func() time.Time
	ttl  time.Duration

	sweepMu   sync.Mutex
	lastSweep time.Time
}

type ServiceOption func(*Service)

// WithSessionTTL fija el tiempo sin uso tras el cual expira una sesión.
// ttl <= 0 usa DefaultSessionTTL.
func WithSessionTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewService(repo Repository, reader PetReader, log logger.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		repo: repo,
		pets: reader,
		log:  log,
		now:  time.Now,
		ttl:  DefaultSessionTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open crea una sesión nueva parada en ListScreen. De paso barre las
// sesiones vencidas, como mucho una vez cada ttl/2.
func (s *Service) Open(ctx context.Context) (State, error) {
	s.maybeSweep(ctx)

	sess := newSession(uuid.NewString(), s.now())
	if err := s.repo.Create(ctx, sess); err != nil {
		return State{}, err
	}

	s.log.Debug("navigation session opened", map[string]any{"session": sess.ID})
	return s.snapshot(sess), nil
}

func (s *Service) State(ctx context.Context, sessionID string) (State, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	return s.snapshot(sess), nil
}

// Select es el evento select(petId) de la lista.
// Nunca falla por un id inexistente: eso se resuelve en el render.
func (s *Service) Select(ctx context.Context, sessionID string, petID int) (State, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return State{}, err
	}

	sess.mu.Lock()
	sess.ctrl.NavigateToDetail(petID)
	sess.mu.Unlock()

	s.log.Debug("navigate to detail", map[string]any{
		"session": sess.ID,
		"pet_id":  petID,
	})
	return s.snapshot(sess), nil
}

// Back delega en el host. En la raíz se queda en ListScreen.
func (s *Service) Back(ctx context.Context, sessionID string) (State, error) {
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return State{}, err
	}

	sess.mu.Lock()
	if top, moved := sess.stack.Back(); moved {
		sess.ctrl.Restore(top)
	}
	sess.mu.Unlock()

	return s.snapshot(sess), nil
}

func (s *Service) Close(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, sessionID)
}

// PurgeExpired borra las sesiones sin uso desde hace más de ttl.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	n, err := s.repo.PurgeIdle(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("navigation sessions purged", map[string]any{
			"count": n,
			"ttl":   s.ttl.String(),
		})
	}
	return n, nil
}

func (s *Service) maybeSweep(ctx context.Context) {
	now := s.now()

	s.sweepMu.Lock()
	if now.Sub(s.lastSweep) < s.ttl/2 {
		s.sweepMu.Unlock()
		return
	}
	s.lastSweep = now
	s.sweepMu.Unlock()

	if _, err := s.PurgeExpired(ctx); err != nil {
		s.log.Warn("purge navigation sessions failed", map[string]any{"err": err.Error()})
	}
}

// get resuelve la sesión y renueva su uso. Una sesión vencida se borra y
// se reporta como ErrNotFound.
func (s *Service) get(ctx context.Context, sessionID string) (*Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Sub(sess.LastUsed()) > s.ttl {
		_ = s.repo.Delete(ctx, sess.ID)
		s.log.Debug("navigation session expired", map[string]any{"session": sess.ID})
		return nil, ErrNotFound
	}

	sess.touch(now)
	return sess, nil
}

func (s *Service) snapshot(sess *Session) State {
	sess.mu.Lock()
	screen := sess.ctrl.Current()
	canGoBack := sess.stack.Depth() > 1
	sess.mu.Unlock()

	return State{
		SessionID: sess.ID,
		Screen:    screen,
		CanGoBack: canGoBack,
		View:      Render(s.pets, screen),
	}
}
