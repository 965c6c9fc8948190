package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"tab", "next section"},
		{"shift+tab", "previous section"},
	}
	out := Format(rows, []Alignment{AlignRight, AlignLeft})
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0] != "      tab  next section    " {
		t.Fatalf("unexpected first row %q", out[0])
	}
	if out[1] != "shift+tab  previous section" {
		t.Fatalf("unexpected second row %q", out[1])
	}
}

func TestFormatCountsWideCells(t *testing.T) {
	out := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	if out[1] != "ab    y" {
		t.Fatalf("expected wide glyphs to occupy two cells, got %q", out[1])
	}
}

func TestFormatRaggedRows(t *testing.T) {
	out := Format([][]string{{"a"}, {"bb", "c"}}, nil)
	if out[0] != "a " || out[1] != "bb  c" {
		t.Fatalf("unexpected ragged output %q", out)
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
