package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clinicadesk/clinicadesk/internal/apperrors"
	"github.com/clinicadesk/clinicadesk/internal/db"
)

// seededGateway provisions a store holding one patient, one appointment,
// one treatment, and one payment.
func seededGateway(t *testing.T) *db.Gateway {
	t.Helper()
	ctx := context.Background()

	store, err := db.Open(ctx, filepath.Join(t.TempDir(), "clinica-test.db"), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Provision(ctx))
	t.Cleanup(func() { store.Close() })

	gateway := db.NewGateway(store)

	_, err = gateway.Mutate(ctx, `
		INSERT INTO pacientes (id, nome, telefone, cpf) VALUES (?, ?, ?, ?)`,
		"p-1", "Maria; Souza", "11 99999-0000", "123.456.789-00")
	require.NoError(t, err)

	_, err = gateway.Mutate(ctx, `
		INSERT INTO consultas (id, pacienteId, data, hora, tipo) VALUES (?, ?, ?, ?, ?)`,
		"c-1", "p-1", "2026-02-01", "14:00", "avaliação")
	require.NoError(t, err)

	res, err := gateway.Mutate(ctx, `
		INSERT INTO tratamentos (pacienteId, data, descricao, valor_total, status_pagamento)
		VALUES (?, ?, ?, ?, ?)`,
		"p-1", "2026-02-01", "tratamento de canal", 300.0, "parcial")
	require.NoError(t, err)

	_, err = gateway.Mutate(ctx, `
		INSERT INTO pagamentos (tratamentoId, data, valor_pago, forma_pagamento)
		VALUES (?, ?, ?, ?)`,
		res.LastInsertID, "2026-02-05", 120.5, "pix")
	require.NoError(t, err)

	return gateway
}

func TestExporterWritesSevenFiles(t *testing.T) {
	gateway := seededGateway(t)
	destDir := t.TempDir()

	exporter := NewExporter(gateway,
		FixedDestination(filepath.Join(destDir, "backup-clinica.csv")),
		nil, zap.NewNop())

	dir, err := exporter.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, destDir, dir)

	want := []string{
		"pacientes.csv", "consultas.csv", "anamnese.csv", "tratamentos.csv",
		"pagamentos.csv", "estoque.csv", "estoque_compras.csv",
	}
	for _, name := range want {
		_, err := os.Stat(filepath.Join(destDir, name))
		assert.NoError(t, err, "missing %s", name)
	}

	// No staging leftovers.
	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Len(t, entries, len(want))
}

func TestExporterExcludesInternalIDs(t *testing.T) {
	gateway := seededGateway(t)
	destDir := t.TempDir()

	exporter := NewExporter(gateway,
		FixedDestination(filepath.Join(destDir, "backup.csv")),
		nil, zap.NewNop())
	_, err := exporter.Run(context.Background())
	require.NoError(t, err)

	pacientes, err := os.ReadFile(filepath.Join(destDir, "pacientes.csv"))
	require.NoError(t, err)
	header := strings.SplitN(strings.TrimPrefix(string(pacientes), "\ufeff"), "\n", 2)[0]
	assert.Contains(t, string(pacientes), "Maria; Souza")
	assert.NotContains(t, strings.Split(header, ";"), "id")

	pagamentos, err := os.ReadFile(filepath.Join(destDir, "pagamentos.csv"))
	require.NoError(t, err)
	content := string(pagamentos)
	// Joined human-readable fields supersede internal ids.
	assert.Contains(t, content, "tratamento de canal")
	assert.Contains(t, content, "Maria; Souza")
	header = strings.SplitN(strings.TrimPrefix(content, "\ufeff"), "\n", 2)[0]
	assert.NotContains(t, strings.Split(header, ";"), "id")
	assert.NotContains(t, strings.Split(header, ";"), "tratamentoId")
}

func TestExporterEmptyEntityYieldsEmptyFile(t *testing.T) {
	gateway := seededGateway(t)
	destDir := t.TempDir()

	exporter := NewExporter(gateway,
		FixedDestination(filepath.Join(destDir, "backup.csv")),
		nil, zap.NewNop())
	_, err := exporter.Run(context.Background())
	require.NoError(t, err)

	// No inventory was seeded; the file exists and is empty, with no
	// header and no byte-order mark.
	estoque, err := os.ReadFile(filepath.Join(destDir, "estoque.csv"))
	require.NoError(t, err)
	assert.Len(t, estoque, 0)
}

type cancelPicker struct{}

func (cancelPicker) Pick(_ context.Context) (string, error) { return "", nil }

func TestExporterCancelledTouchesNothing(t *testing.T) {
	gateway := seededGateway(t)

	exporter := NewExporter(gateway, cancelPicker{}, nil, zap.NewNop())
	_, err := exporter.Run(context.Background())

	assert.True(t, errors.Is(err, apperrors.ErrCancelled))
}

func TestExporterWorkbookFormat(t *testing.T) {
	gateway := seededGateway(t)
	destDir := t.TempDir()

	exporter := NewExporter(gateway,
		FixedDestination(filepath.Join(destDir, "backup.csv")),
		[]string{FormatCSV, FormatXLSX}, zap.NewNop())
	_, err := exporter.Run(context.Background())
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(destDir, "backup.xlsx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty defaults to csv", input: "", want: []string{"csv"}},
		{name: "single", input: "xlsx", want: []string{"xlsx"}},
		{name: "both with spaces", input: "csv, xlsx", want: []string{"csv", "xlsx"}},
		{name: "unknown rejected", input: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormats(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
