// Package report renders human-readable run summaries.
package report

import (
	"strconv"
	"strings"

	"newswire/internal/ingest"

	"github.com/mattn/go-runewidth"
)

// Summary renders a run result as a display-width-aligned table suitable
// for terminal output.
func Summary(res *ingest.RunResult) string {
	header := []string{"Provider", "Fetched", "Created", "Skipped", "Failed", "Fetch Error"}
	rows := [][]string{header}

	for _, p := range res.Providers {
		fetchErr := "-"
		if p.FetchErr != nil {
			fetchErr = p.FetchErr.Error()
		}

		rows = append(rows, []string{
			p.Provider,
			strconv.Itoa(p.Fetched),
			strconv.Itoa(p.Created),
			strconv.Itoa(p.Skipped),
			strconv.Itoa(p.Failed),
			fetchErr,
		})
	}

	widths := make([]int, len(header))

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeRow := func(row []string) {
		b.WriteString("|")

		for i, cell := range row {
			b.WriteString(" ")
			b.WriteString(padCell(cell, widths[i]))
			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(rows[0])

	b.WriteString("|")

	for _, w := range widths {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", w))
		b.WriteString(" |")
	}

	b.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return b.String()
}

// padCell pads a cell to the column width using display width, so wide
// runes keep columns aligned.
func padCell(cell string, width int) string {
	padding := width - runewidth.StringWidth(cell)
	if padding <= 0 {
		return cell
	}

	return cell + strings.Repeat(" ", padding)
}
