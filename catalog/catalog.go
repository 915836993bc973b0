package catalog

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Field and collection bounds, in runes. Values beyond a bound are
// truncated, never rejected.
const (
	MaxTitleLen       = 100
	MaxDirectorLen    = 100
	MaxReleaseDateLen = 20
	MaxDescriptionLen = 500

	// MaxRecords caps catalog size. New drops records past the cap.
	MaxRecords = 30
)

// ID is a stable identifier for a catalog record.
// It is derived from record content, so identical records get identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Record is a single catalog entry. Records are immutable once the catalog
// holding them has been built.
type Record struct {
	Id          ID
	Title       string
	Director    string
	ReleaseDate string  // Not semantically parsed, display only
	Rating      float32 // Popularity score, the sole ranking key
	Description string
}

// Catalog is an immutable ordered collection of records. After New returns
// there is no writer, so any number of goroutines may read it concurrently
// without locking.
type Catalog struct {
	records []Record
}

// New builds a catalog from the given records. At most MaxRecords are kept;
// extra records are silently dropped. String fields are truncated to their
// bounds and each record is assigned a content-derived ID.
func New(records []Record) *Catalog {
	n := len(records)
	if n > MaxRecords {
		n = MaxRecords
	}

	bounded := make([]Record, n)
	for i, rec := range records[:n] {
		rec.Title = Truncate(rec.Title, MaxTitleLen)
		rec.Director = Truncate(rec.Director, MaxDirectorLen)
		rec.ReleaseDate = Truncate(rec.ReleaseDate, MaxReleaseDateLen)
		rec.Description = Truncate(rec.Description, MaxDescriptionLen)
		rec.Id = IDFromContent(rec.Title + "|" + rec.Director)
		bounded[i] = rec
	}

	return &Catalog{records: bounded}
}

// Size returns the number of records in the catalog.
func (c *Catalog) Size() int {
	return len(c.records)
}

// RecordAt returns the record at position i as a value copy.
// Out-of-range access is a caller bug and panics.
func (c *Catalog) RecordAt(i int) Record {
	return c.records[i]
}

// Truncate bounds s to at most max runes. It is the single truncation
// point for all bounded text in the system; cuts always land on a rune
// boundary so the result stays valid UTF-8.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
