package search

import (
	"strings"

	"github.com/filmdex/filmdex/catalog"
)

// MaxKeywordLen bounds keyword length in runes. Longer keywords are
// truncated before matching, not rejected.
const MaxKeywordLen = 64

// Matches reports whether the record's description contains the keyword,
// case-insensitively. Only the description field is searched. An empty
// keyword matches nothing.
func Matches(rec catalog.Record, keyword string) bool {
	keyword = catalog.Truncate(keyword, MaxKeywordLen)
	if keyword == "" {
		return false
	}

	// Description is already bounded at catalog construction.
	return strings.Contains(strings.ToLower(rec.Description), strings.ToLower(keyword))
}
