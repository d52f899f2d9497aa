package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/LtttAZ/fus/internal/ado"
)

func TestProjectRows(t *testing.T) {
	t.Parallel()

	records := []map[string]any{
		{"id": "id-1", "name": "frontend", "size": 1024},
		{"id": "id-2", "name": "backend", "size": nil},
	}

	rows, err := projectRows(records, []string{"name", "size"})
	if err != nil {
		t.Fatalf("projectRows: %v", err)
	}

	want := [][]string{
		{"1", "frontend", "1024"},
		{"2", "backend", "—"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectRowsAbortsOnBadField(t *testing.T) {
	t.Parallel()

	records := []map[string]any{
		{"id": "id-1", "name": "frontend"},
		{"id": "id-2"},
	}

	_, err := projectRows(records, []string{"name"})

	var ferr *ado.FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want FieldError", err)
	}

	if ferr.Path != "name" {
		t.Errorf("Path = %q, want name", ferr.Path)
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	finished := time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "—"},
		{name: "zero time", value: time.Time{}, want: "—"},
		{name: "time", value: finished, want: "2026-08-30 10:15"},
		{name: "string", value: "succeeded", want: "succeeded"},
		{name: "int", value: 42, want: "42"},
		{name: "json number", value: float64(42), want: "42"},
		{name: "bool", value: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatCell(tt.value); got != tt.want {
				t.Errorf("formatCell(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out := renderTable(
		[]string{"#", "repo_id", "repo_name"},
		[][]string{{"1", "id-1", "frontend"}},
	)

	for _, cell := range []string{"repo_id", "repo_name", "frontend", "id-1"} {
		if !strings.Contains(out, cell) {
			t.Errorf("table missing %q:\n%s", cell, out)
		}
	}
}
