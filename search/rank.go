package search

import "sort"

// MaxResults caps how many matches a single search collects. Scanning
// stops collecting once the cap is reached; further matches are dropped
// silently rather than reported as overflow.
const MaxResults = 30

// Rank orders entries by rating, highest first. The sort is stable, so
// entries with equal ratings keep their relative order; since searches
// collect entries in catalog order, ties end up in ascending catalog
// position.
func Rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rating > entries[j].Rating
	})
}
