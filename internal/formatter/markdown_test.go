package formatter

import (
	"strings"
	"testing"

	"noticias/internal/normalizer"
	"noticias/internal/site"
)

func TestFormatTable(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		rows     [][]string
		expected string
	}{
		{
			name:    "Basic table formatting",
			headers: []string{"Header 1", "Header 2"},
			rows:    [][]string{{"val 1", "val 2"}},
			expected: `
| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |
`,
		},
		{
			name:    "Minimum separator width",
			headers: []string{"H1", "H2"},
			rows:    [][]string{{"v1", "v2"}},
			expected: `
| H1  | H2  |
| --- | --- |
| v1  | v2  |
`,
		},
		{
			name:    "Accented names",
			headers: []string{"Autor", "Artículos"},
			rows:    [][]string{{"José Núñez", "2"}, {"Total", "2"}},
			expected: `
| Autor      | Artículos |
| ---------- | --------- |
| José Núñez | 2         |
| Total      | 2         |
`,
		},
		{
			name:    "Mixed CJK and ASCII",
			headers: []string{"Date", "Event"},
			rows: [][]string{
				{"2025-01-01", "消防處：增至83死。"},
				{"2025-01-02", "Short text"},
			},
			// 消防處：增至死。 are double width: 8*2 + 2 digits = 18.
			expected: `
| Date       | Event              |
| ---------- | ------------------ |
| 2025-01-01 | 消防處：增至83死。 |
| 2025-01-02 | Short text         |
`,
		},
		{
			name:    "Short rows are padded",
			headers: []string{"A", "B", "C"},
			rows:    [][]string{{"x"}},
			expected: `
| A   | B   | C   |
| --- | --- | --- |
| x   |     |     |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTable(tt.headers, tt.rows)
			if got != strings.TrimSpace(tt.expected) {
				t.Errorf("FormatTable() = \n%v\nwant \n%v", got, tt.expected)
			}
		})
	}
}

func TestSummaryTable(t *testing.T) {
	tests := []struct {
		name     string
		counts   []site.AuthorCount
		expected string
	}{
		{
			name: "Authors with total",
			counts: []site.AuthorCount{
				{Author: "Alice Smith", Count: 2},
				{Author: "Bob", Count: 1},
			},
			expected: `
| Autor       | Artículos |
| ----------- | --------- |
| Alice Smith | 2         |
| Bob         | 1         |
| Total       | 3         |
`,
		},
		{
			name: "No authors",
			expected: `
| Autor | Artículos |
| ----- | --------- |
| Total | 0         |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummaryTable(tt.counts)
			if got != strings.TrimSpace(tt.expected) {
				t.Errorf("SummaryTable() = \n%v\nwant \n%v", got, tt.expected)
			}
		})
	}
}

func TestRejectionTable(t *testing.T) {
	if got := RejectionTable(nil); got != "" {
		t.Errorf("RejectionTable(nil) = %q, want empty", got)
	}

	got := RejectionTable([]normalizer.Rejection{
		{Kind: normalizer.KindTooShort, Field: normalizer.FieldTitle, Value: "Short", Min: 10, Index: 0},
	})

	want := strings.TrimSpace(`
| #   | Motivo   | Campo | Valor | Mínimo |
| --- | -------- | ----- | ----- | ------ |
| 0   | TooShort | title | Short | 10     |
`)
	if got != want {
		t.Errorf("RejectionTable() = \n%v\nwant \n%v", got, want)
	}
}

func TestRejectionTable_Values(t *testing.T) {
	long := strings.Repeat("x", 50)

	got := RejectionTable([]normalizer.Rejection{
		{Kind: normalizer.KindNoSlug, Field: normalizer.FieldTitle, Value: "¿¿a|b   ¡¡", Index: 3},
		{Kind: normalizer.KindTooShort, Field: normalizer.FieldBody, Value: long, Min: 60, Index: 4},
	})

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}

	if !strings.Contains(lines[2], "¿¿a/b ¡¡") {
		t.Errorf("pipe should be replaced and spaces collapsed, got %q", lines[2])
	}

	if !strings.Contains(lines[3], strings.Repeat("x", 40)+"...") || strings.Contains(lines[3], strings.Repeat("x", 41)) {
		t.Errorf("long value should be truncated, got %q", lines[3])
	}

	for _, line := range lines {
		if strings.Count(line, "|") != 6 {
			t.Errorf("row %q should have 6 column borders", line)
		}
	}
}
