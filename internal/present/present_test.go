package present

import (
	"strings"
	"testing"

	"github.com/abhisek/sqlquest/internal/engine"
)

func makeSet(n int) engine.ResultSet {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{int64(i), "x"}
	}
	return engine.ResultSet{Columns: []string{"id", "name"}, Rows: rows}
}

func TestPresent_Empty(t *testing.T) {
	v := Present(nil)
	if !v.Empty {
		t.Fatal("expected empty view")
	}
	if got := Text(v); got != NoResults+"\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestPresent_Truncation(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		shown     int
		truncated bool
	}{
		{"zero rows", 0, 0, false},
		{"at limit", 200, 200, false},
		{"over limit", 201, 200, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Present([]engine.ResultSet{makeSet(tt.rows)})
			if v.Empty {
				t.Fatal("result set with columns must not be empty")
			}
			b := v.Blocks[0]
			if len(b.Rows) != tt.shown {
				t.Errorf("shown = %d, want %d", len(b.Rows), tt.shown)
			}
			if b.Truncated != tt.truncated {
				t.Errorf("Truncated = %v, want %v", b.Truncated, tt.truncated)
			}
			if b.TotalRows != tt.rows {
				t.Errorf("TotalRows = %d, want %d", b.TotalRows, tt.rows)
			}
			if tt.truncated && b.Notice() == "" {
				t.Error("missing truncation notice")
			}
			if !tt.truncated && b.Notice() != "" {
				t.Errorf("unexpected notice %q", b.Notice())
			}
		})
	}
}

func TestPresent_UsesEngineTotal(t *testing.T) {
	set := makeSet(engine.KeptRows)
	set.Total = 5000
	b := Present([]engine.ResultSet{set}).Blocks[0]
	if b.TotalRows != 5000 {
		t.Errorf("TotalRows = %d, want 5000", b.TotalRows)
	}
	if !strings.Contains(b.Label(), "5000 rows") {
		t.Errorf("Label() = %q", b.Label())
	}
	if !b.Truncated || len(b.Rows) != MaxRows {
		t.Errorf("got %d rows, truncated=%v", len(b.Rows), b.Truncated)
	}
}

func TestBlock_Label(t *testing.T) {
	v := Present([]engine.ResultSet{makeSet(3), makeSet(201)})
	if got, want := v.Blocks[0].Label(), "Result set #1 • 2 columns • 3 rows"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
	if got, want := v.Blocks[1].Label(), "Result set #2 • 2 columns • 201 rows"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{"Alice", "Alice"},
		{[]byte("raw"), "raw"},
		{int64(42), "42"},
		{95000.0, "95000"},
		{0.5, "0.5"},
		{780000.0, "780000"},
	}
	for _, tt := range tests {
		if got := Cell(tt.in); got != tt.want {
			t.Errorf("Cell(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestText_Layout(t *testing.T) {
	v := Present([]engine.ResultSet{{
		Columns: []string{"dept_name", "people"},
		Rows:    [][]any{{"Engineering", int64(3)}, {"HR", nil}},
	}})
	out := Text(v)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if lines[1] != "dept_name    people" {
		t.Errorf("header = %q", lines[1])
	}
	if lines[4] != "HR           NULL" {
		t.Errorf("row = %q", lines[4])
	}
}
