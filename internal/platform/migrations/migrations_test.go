package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostgresURL(t *testing.T) {
	got, err := PostgresURL("postgres://u:p@localhost:5432/pets?sslmode=disable")
	require.NoError(t, err)
	require.Equal(t, "pgx5://u:p@localhost:5432/pets?sslmode=disable", got)

	got, err = PostgresURL("postgresql://localhost/pets")
	require.NoError(t, err)
	require.Equal(t, "pgx5://localhost/pets", got)

	_, err = PostgresURL("host=localhost dbname=pets")
	require.Error(t, err)
}

func TestSQLiteURL(t *testing.T) {
	require.Equal(t, "sqlite3:///tmp/pets.db", SQLiteURL("/tmp/pets.db"))
}

func TestEmbeddedFiles(t *testing.T) {
	entries, err := files.ReadDir("sql")
	require.NoError(t, err)
	require.Len(t, entries, 4)
}
