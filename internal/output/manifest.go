// internal/output/manifest.go
package output

import (
	"encoding/json"
	"io"

	"gbsplit/internal/split"
)

// ManifestEntry describes one produced file.
type ManifestEntry struct {
	Index     int    `json:"index"`
	Path      string `json:"path"`
	Locus     string `json:"locus"`
	Accession string `json:"accession,omitempty"`
	Length    int    `json:"length"`
}

// WriteManifest writes an indented-JSON manifest of the plan, in plan
// order.
func WriteManifest(w io.Writer, plan []split.File) error {
	entries := make([]ManifestEntry, 0, len(plan))
	for _, f := range plan {
		entries = append(entries, ManifestEntry{
			Index:     f.Index,
			Path:      f.Path,
			Locus:     f.Record.Name,
			Accession: f.Record.Accession,
			Length:    f.Record.Length,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
