package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clinica-test.db")

	store, err := Open(context.Background(), path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func tableNames(t *testing.T, store *DB) map[string]bool {
	t.Helper()
	rows, err := store.SQL().Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	require.NoError(t, err)
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	require.NoError(t, rows.Err())
	return names
}

func TestProvisionCreatesAllTables(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assert.False(t, store.Ready())
	require.NoError(t, store.Provision(ctx))
	assert.True(t, store.Ready())

	names := tableNames(t, store)
	for _, want := range []string{
		"pacientes", "consultas", "anamnese", "tratamentos",
		"pagamentos", "estoque", "estoque_compras",
	} {
		assert.True(t, names[want], "missing table %s", want)
	}
}

func TestProvisionIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Provision(ctx))
	first := tableNames(t, store)

	// Second run hits both the IF NOT EXISTS path and the benign
	// "duplicate column" migration case.
	require.NoError(t, store.Provision(ctx))
	second := tableNames(t, store)

	assert.Equal(t, first, second)
}

func TestProvisionAddsMigratedColumn(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Provision(ctx))

	rows, err := store.SQL().Query(`PRAGMA table_info(pacientes)`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dflt any
		require.NoError(t, rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk))
		if name == "dataCadastro" {
			found = true
		}
	}
	require.NoError(t, rows.Err())
	assert.True(t, found, "dataCadastro column should exist after provisioning")
}
