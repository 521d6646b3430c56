// core/genbank/writer.go
package genbank

import (
	"bytes"
	"io"
)

// Write serializes rec to w in GenBank flatfile form: the verbatim record
// lines followed by the `//` terminator.
func Write(w io.Writer, rec Record) error {
	_, err := w.Write(Bytes(rec))
	return err
}

// Bytes renders rec as a complete flatfile record.
func Bytes(rec Record) []byte {
	var b bytes.Buffer
	for _, line := range rec.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("//\n")
	return b.Bytes()
}
