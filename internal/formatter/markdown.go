// Package formatter renders console reports as aligned Markdown tables.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"noticias/internal/normalizer"
	"noticias/internal/site"
	"noticias/pkg/utils"
)

// maxValueWidth caps rejected values shown in reports.
const maxValueWidth = 40

// FormatTable renders headers and rows as a Markdown table whose columns are
// padded to the widest cell, measured in terminal display width.
func FormatTable(headers []string, rows [][]string) string {
	table := make([][]string, 0, len(rows)+2)
	table = append(table, headers, nil)
	table = append(table, rows...)

	return strings.Join(alignTable(table, 1), "\n")
}

// SummaryTable renders one row per author with their article count and a total row.
func SummaryTable(counts []site.AuthorCount) string {
	rows := make([][]string, 0, len(counts)+1)
	total := 0

	for _, c := range counts {
		rows = append(rows, []string{c.Author, strconv.Itoa(c.Count)})
		total += c.Count
	}

	rows = append(rows, []string{"Total", strconv.Itoa(total)})

	return FormatTable([]string{"Autor", "Artículos"}, rows)
}

// RejectionTable renders the rejection log; it returns "" when nothing was rejected.
func RejectionTable(rejections []normalizer.Rejection) string {
	if len(rejections) == 0 {
		return ""
	}

	helper := utils.NewStringHelper()
	rows := make([][]string, 0, len(rejections))

	for _, r := range rejections {
		minimum := ""
		if r.Min > 0 {
			minimum = strconv.Itoa(r.Min)
		}

		value := strings.ReplaceAll(helper.NormalizeWhitespace(r.Value), "|", "/")

		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			string(r.Kind),
			r.Field,
			helper.TruncateString(value, maxValueWidth),
			minimum,
		})
	}

	return FormatTable([]string{"#", "Motivo", "Campo", "Valor", "Mínimo"}, rows)
}

// alignTable pads every cell to its column width. The row at separatorRowIdx
// is rendered as dashes; pass -1 for none.
func alignTable(table [][]string, separatorRowIdx int) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for rIdx, row := range table {
		if rIdx == separatorRowIdx {
			continue
		}

		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	result := make([]string, 0, len(table))

	for i, row := range table {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			if i == separatorRowIdx {
				sb.WriteString(strings.Repeat("-", colWidths[j]))
			} else {
				content := ""
				if j < len(row) {
					content = row[j]
				}

				sb.WriteString(content)

				if padding := colWidths[j] - runewidth.StringWidth(content); padding > 0 {
					sb.WriteString(strings.Repeat(" ", padding))
				}
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}
