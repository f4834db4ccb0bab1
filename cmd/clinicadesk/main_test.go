package main

import (
	"testing"
)

func TestToParams(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []any
	}{
		{
			name: "empty args",
			args: nil,
			want: []any{},
		},
		{
			name: "single param",
			args: []string{"p-1"},
			want: []any{"p-1"},
		},
		{
			name: "multiple params keep order",
			args: []string{"p-1", "2026-02-01", "pix"},
			want: []any{"p-1", "2026-02-01", "pix"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toParams(tt.args)
			if len(got) != len(tt.want) {
				t.Fatalf("toParams() returned %d params, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("param %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
