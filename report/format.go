package report

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column widths for the report body.
const (
	titleWidth    = 28
	directorWidth = 18
)

const (
	ruleHeavy = "============================================================"
	ruleLight = "------------------------------------------------------------"
)

// Row is one ranked match, already resolved to display fields.
type Row struct {
	Title       string
	Director    string
	ReleaseDate string
	Rating      float32
}

// Format renders one complete report block: header with the keyword and
// match count, one body line per ranked row (or a no-matches marker), and
// a closing rule. The block is returned as a single string so a Sink can
// emit it atomically.
func Format(keyword string, rows []Row) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", ruleHeavy)
	fmt.Fprintf(&b, "Keyword: \"%s\" | Matches: %d\n", keyword, len(rows))
	b.WriteString("Sorted by popularity rating (descending)\n")
	fmt.Fprintf(&b, "%s\n", ruleLight)

	if len(rows) == 0 {
		b.WriteString("(No matches found)\n")
	} else {
		for i, row := range rows {
			fmt.Fprintf(&b, "%2d) %s | %s | %s  (%.1f)\n",
				i+1,
				column(row.Title, titleWidth),
				column(row.Director, directorWidth),
				row.ReleaseDate,
				row.Rating,
			)
		}
	}

	fmt.Fprintf(&b, "%s\n", ruleHeavy)
	return b.String()
}

// column left-justifies s in a field of exactly width runes, truncating
// when it does not fit.
func column(s string, width int) string {
	if n := utf8.RuneCountInString(s); n > width {
		runes := []rune(s)
		return string(runes[:width])
	}
	return fmt.Sprintf("%-*s", width, s)
}
