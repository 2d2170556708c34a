package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Los mismos .sql sirven para Postgres y SQLite.
//
//go:embed sql/*.sql
var files embed.FS

// Up aplica todas las migraciones pendientes.
// databaseURL usa el esquema del driver de migrate: "sqlite3://..." o "pgx5://...".
// Abre su propia conexión y la cierra al terminar.
func Up(databaseURL string) error {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations up: %w", err)
	}
	return nil
}

// SQLiteURL arma la URL de migrate para un archivo SQLite.
func SQLiteURL(path string) string {
	return "sqlite3://" + path
}

// PostgresURL convierte un DSN postgres:// (o postgresql://) al esquema pgx5://.
func PostgresURL(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix), nil
		}
	}
	if strings.HasPrefix(dsn, "pgx5://") {
		return dsn, nil
	}
	return "", fmt.Errorf("postgres dsn must be a postgres:// url")
}
