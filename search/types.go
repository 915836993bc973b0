package search

// Request is one keyword search to execute.
type Request struct {
	Keyword  string
	WorkerID int // Diagnostics only, never affects results
}

// Entry is one match within a single search: the record's stable catalog
// position plus its rating captured at match time. Entries are ephemeral
// and never outlive the search that collected them.
type Entry struct {
	Position int
	Rating   float32
}
