package navigation

import (
	"context"
	"time"
)

// Repository guarda las sesiones de navegación (una por cliente/host).
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error

	// PurgeIdle borra las sesiones cuyo LastUsed es anterior a cutoff y
	// devuelve cuántas borró.
	PurgeIdle(ctx context.Context, cutoff time.Time) (int, error)
}
