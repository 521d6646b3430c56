// internal/output/fasta.go
package output

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"gbsplit-core/genbank"
)

const fastaWidth = 60

// WriteFASTA exports records as multi-FASTA, one entry per record, with
// the LOCUS name as ID and the DEFINITION as description. Records without
// an ORIGIN block are skipped.
func WriteFASTA(w io.Writer, records []genbank.Record) error {
	fw := fasta.NewWriter(w, fastaWidth)
	for _, rec := range records {
		if len(rec.Sequence) == 0 {
			continue
		}
		s := linear.NewSeq(rec.Name, alphabet.BytesToLetters(rec.Sequence), alphabet.DNAgapped)
		s.Desc = rec.Definition
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return nil
}
