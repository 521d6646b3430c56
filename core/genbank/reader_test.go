package genbank

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoRecords = `LOCUS       phageA                    24 bp    DNA     linear   PHG 01-JAN-2024
DEFINITION  Test phage A, complete genome,
            assembled from mock reads.
ACCESSION   PHA001
FEATURES             Location/Qualifiers
     source          1..24
                     /organism="phage A"
     CDS             1..12
                     /product="terminase"
ORIGIN
        1 atgcatgcat gcatgcatgc atgc
//
LOCUS       phageB                    12 bp    DNA     linear   PHG 01-JAN-2024
DEFINITION  Test phage B.
ACCESSION   PHB002
ORIGIN
        1 ggggccccaa tt
//
`

func parse(t *testing.T, data string) []Record {
	t.Helper()
	recs, err := Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return recs
}

func TestReadTwoRecords(t *testing.T) {
	recs := parse(t, twoRecords)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	a, b := recs[0], recs[1]
	if a.Name != "phageA" || b.Name != "phageB" {
		t.Errorf("names: %q %q", a.Name, b.Name)
	}
	if a.Accession != "PHA001" || b.Accession != "PHB002" {
		t.Errorf("accessions: %q %q", a.Accession, b.Accession)
	}
	if a.Length != 24 || b.Length != 12 {
		t.Errorf("lengths: %d %d", a.Length, b.Length)
	}
	if got := string(a.Sequence); got != "atgcatgcatgcatgcatgcatgc" {
		t.Errorf("seq A = %q", got)
	}
	if got := string(b.Sequence); got != "ggggccccaatt" {
		t.Errorf("seq B = %q", got)
	}
}

func TestDefinitionContinuation(t *testing.T) {
	recs := parse(t, twoRecords)
	want := "Test phage A, complete genome, assembled from mock reads."
	if recs[0].Definition != want {
		t.Errorf("definition = %q, want %q", recs[0].Definition, want)
	}
}

func TestReadSkipsReleaseHeader(t *testing.T) {
	recs := parse(t, "GBPHG.SEQ          Genetic Sequence Data Bank\n\n"+twoRecords)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
}

func TestReadEmptyInput(t *testing.T) {
	for _, data := range []string{"", "\n\n", "no locus here\n"} {
		recs := parse(t, data)
		if len(recs) != 0 {
			t.Errorf("input %q: want 0 records, got %d", data, len(recs))
		}
	}
}

func TestReadTruncatedRecord(t *testing.T) {
	trunc := strings.TrimSuffix(twoRecords, "//\n")
	if _, err := Read(strings.NewReader(trunc)); err == nil {
		t.Fatalf("expected error for record without // terminator")
	}
}

func TestRoundTrip(t *testing.T) {
	recs := parse(t, twoRecords)
	var out strings.Builder
	for _, rec := range recs {
		if err := Write(&out, rec); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if out.String() != twoRecords {
		t.Fatalf("round trip mismatch:\n%s", out.String())
	}
	again := parse(t, out.String())
	if len(again) != len(recs) {
		t.Fatalf("re-parse: want %d records, got %d", len(recs), len(again))
	}
	for i := range recs {
		if again[i].Name != recs[i].Name || string(again[i].Sequence) != string(recs[i].Sequence) {
			t.Errorf("record %d changed across round trip", i)
		}
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := ReadAll(filepath.Join(t.TempDir(), "nope.gbk")); err == nil {
		t.Fatalf("expected error for missing input")
	}
}

func TestReadAllGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.gbk.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(twoRecords)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gz: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	recs, err := ReadAll(path)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 2 || recs[0].Name != "phageA" {
		t.Fatalf("gzip parse failed, got %d records", len(recs))
	}
}
