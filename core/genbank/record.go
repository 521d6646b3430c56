// core/genbank/record.go
package genbank

// Record is a single GenBank flatfile entry.
//
// Lines holds the record verbatim, from its LOCUS line up to (but not
// including) the `//` terminator. Writers emit Lines back unchanged, so a
// record survives a read/write cycle byte-equivalent. The named fields are
// parsed out of the block for reporting and export; they never feed back
// into serialization.
type Record struct {
	Name       string // LOCUS name
	Accession  string // primary accession, if present
	Definition string // DEFINITION with continuations joined
	Length     int    // declared length from the LOCUS line

	Sequence []byte // letters collected from the ORIGIN block

	Lines []string
}
