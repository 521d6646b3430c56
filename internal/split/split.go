// internal/split/split.go
package split

import (
	"context"
	"fmt"
	"path/filepath"

	"gbsplit-core/genbank"
)

// File is one planned output: the record at Index (1-based, input order)
// rendered to Path.
type File struct {
	Index  int
	Path   string
	Record genbank.Record
}

// Plan maps records to output files named <prefix>_<i><ext> under dir,
// where i is the record's 1-based position in input order. Plan does no
// I/O; the same records always yield the same plan.
func Plan(records []genbank.Record, dir, prefix, ext string) []File {
	plan := make([]File, 0, len(records))
	for i, rec := range records {
		name := fmt.Sprintf("%s_%d%s", prefix, i+1, ext)
		plan = append(plan, File{
			Index:  i + 1,
			Path:   filepath.Join(dir, name),
			Record: rec,
		})
	}
	return plan
}

// Sink abstracts the filesystem so Execute can be tested without one.
type Sink interface {
	MkdirAll(dir string) error
	WriteFile(path string, data []byte) error
}

// Execute writes each planned file through sink in plan order, calling
// notify after each successful write. The first write error aborts the
// whole run; there is no skip-and-continue mode.
func Execute(ctx context.Context, plan []File, sink Sink, notify func(path string)) error {
	for _, f := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.WriteFile(f.Path, genbank.Bytes(f.Record)); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		if notify != nil {
			notify(f.Path)
		}
	}
	return nil
}
