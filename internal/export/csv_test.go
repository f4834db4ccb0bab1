package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/clinicadesk/clinicadesk/internal/db"
)

func TestEncodeCSVQuoting(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "plain value stays unquoted",
			value: "limpeza",
			want:  "limpeza",
		},
		{
			name:  "value with delimiter is quoted",
			value: "canal; extração",
			want:  `"canal; extração"`,
		},
		{
			name:  "value with quote is quoted and doubled",
			value: `dente "26"`,
			want:  `"dente ""26"""`,
		},
		{
			name:  "value with newline is quoted",
			value: "linha1\nlinha2",
			want:  "\"linha1\nlinha2\"",
		},
		{
			name:  "nil becomes empty field",
			value: nil,
			want:  "",
		},
		{
			name:  "number is stringified unquoted",
			value: int64(150),
			want:  "150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &db.RecordSet{
				Columns: []string{"campo"},
				Rows:    []map[string]any{{"campo": tt.value}},
			}
			got := string(EncodeCSV(rs, nil))
			want := "\ufeff" + "campo\n" + tt.want
			if got != want {
				t.Errorf("EncodeCSV() = %q, want %q", got, want)
			}
		})
	}
}

func TestEncodeCSVEmptySet(t *testing.T) {
	rs := &db.RecordSet{Columns: []string{"a", "b"}, Rows: []map[string]any{}}

	got := EncodeCSV(rs, nil)
	if len(got) != 0 {
		t.Errorf("expected empty blob for empty set, got %q", got)
	}

	if got := EncodeCSV(nil, nil); len(got) != 0 {
		t.Errorf("expected empty blob for nil set, got %q", got)
	}
}

func TestEncodeCSVExcludesColumns(t *testing.T) {
	rs := &db.RecordSet{
		Columns: []string{"id", "nome", "pacienteId", "valor"},
		Rows: []map[string]any{
			{"id": int64(1), "nome": "Ana", "pacienteId": "p-1", "valor": 100.5},
			{"id": int64(2), "nome": "Bia", "pacienteId": "p-2", "valor": 80.0},
		},
	}

	got := string(EncodeCSV(rs, []string{"id", "pacienteId"}))

	if strings.Contains(got, "pacienteId") || strings.Contains(got, "p-1") {
		t.Errorf("excluded column leaked into output: %q", got)
	}
	wantHeader := "nome;valor"
	lines := strings.Split(strings.TrimPrefix(got, "\ufeff"), "\n")
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if len(lines) != 3 {
		t.Errorf("expected header + 2 rows, got %d lines", len(lines))
	}
}

func TestEncodeCSVRoundTrip(t *testing.T) {
	rs := &db.RecordSet{
		Columns: []string{"nome", "obs", "cidade"},
		Rows: []map[string]any{
			{"nome": "João; Filho", "obs": "usa \"aparelho\"\ndesde 2020", "cidade": "São Paulo"},
			{"nome": "Célia", "obs": nil, "cidade": "Rio"},
		},
	}

	blob := EncodeCSV(rs, nil)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(blob, []byte("\ufeff"))))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("failed to parse encoded output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[1][0] != "João; Filho" || records[1][1] != "usa \"aparelho\"\ndesde 2020" {
		t.Errorf("row 1 did not round-trip: %v", records[1])
	}
	// Null collapses to an empty string.
	if records[2][1] != "" {
		t.Errorf("nil value should round-trip as empty string, got %q", records[2][1])
	}
}

func TestEncodeCSVDeterministic(t *testing.T) {
	rs := &db.RecordSet{
		Columns: []string{"a", "b", "c"},
		Rows: []map[string]any{
			{"a": "1", "b": "2", "c": "3"},
			{"a": "4", "b": "5", "c": "6"},
		},
	}

	first := EncodeCSV(rs, []string{"b"})
	for i := 0; i < 50; i++ {
		if !bytes.Equal(first, EncodeCSV(rs, []string{"b"})) {
			t.Fatal("EncodeCSV is not deterministic across calls")
		}
	}
}

func TestEncodeCSVStartsWithBOM(t *testing.T) {
	rs := &db.RecordSet{
		Columns: []string{"nome"},
		Rows:    []map[string]any{{"nome": "José"}},
	}

	blob := EncodeCSV(rs, nil)
	if !bytes.HasPrefix(blob, []byte{0xEF, 0xBB, 0xBF}) {
		t.Errorf("output must start with the UTF-8 byte-order mark")
	}
}
