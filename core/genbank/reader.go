// core/genbank/reader.go
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// Continuation lines in header sections are indented by twelve spaces.
	continuation = "            "

	maxLine = 16 * 1024 * 1024
)

// Scan parses GenBank flatfile records from r and calls emit for each
// complete record in file order. Content before the first LOCUS line
// (release headers, blank lines) is skipped. A record that reaches EOF
// before its `//` terminator is an error.
func Scan(r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur      *Record
		inOrigin bool
		contDst  *string
	)

	for sc.Scan() {
		line := sc.Text()

		if cur == nil {
			if !strings.HasPrefix(line, "LOCUS") {
				continue
			}
			rec := Record{Lines: []string{line}}
			parseLocus(&rec, line)
			cur = &rec
			inOrigin = false
			contDst = nil
			continue
		}

		if strings.HasPrefix(line, "//") {
			if err := emit(*cur); err != nil {
				return err
			}
			cur = nil
			continue
		}

		cur.Lines = append(cur.Lines, line)

		if inOrigin {
			appendOriginLetters(cur, line)
			continue
		}

		if contDst != nil && strings.HasPrefix(line, continuation) {
			*contDst += " " + strings.TrimSpace(line)
			continue
		}
		contDst = nil

		switch {
		case strings.HasPrefix(line, "DEFINITION"):
			cur.Definition = strings.TrimSpace(strings.TrimPrefix(line, "DEFINITION"))
			contDst = &cur.Definition
		case strings.HasPrefix(line, "ACCESSION"):
			if f := strings.Fields(line); len(f) > 1 {
				cur.Accession = f[1]
			}
		case strings.HasPrefix(line, "ORIGIN"):
			inOrigin = true
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("genbank scan: %w", err)
	}
	if cur != nil {
		return fmt.Errorf("genbank: record %q truncated before // terminator", cur.Name)
	}
	return nil
}

// Read parses every record from r into memory, preserving file order.
// Zero records is not an error.
func Read(r io.Reader) ([]Record, error) {
	var recs []Record
	err := Scan(r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadAll opens path (plain, gzip, or "-" for stdin) and parses every
// record it contains.
func ReadAll(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// parseLocus fills Name and Length from a LOCUS line:
//
//	LOCUS       NC_001416              48502 bp    DNA     linear   PHG ...
func parseLocus(rec *Record, line string) {
	f := strings.Fields(line)
	if len(f) > 1 {
		rec.Name = f[1]
	}
	if len(f) > 2 {
		if n, err := strconv.Atoi(f[2]); err == nil {
			rec.Length = n
		}
	}
}

// appendOriginLetters collects sequence letters from an ORIGIN data line,
// skipping the leading base-offset number:
//
//	        1 gggcggcgac ctcgcgggtt ttcgctattt atgaaaattt tccggtttaa
func appendOriginLetters(rec *Record, line string) {
	for _, f := range strings.Fields(line) {
		if isAllDigits(f) {
			continue
		}
		rec.Sequence = append(rec.Sequence, f...)
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
