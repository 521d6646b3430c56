// internal/writers/sink.go
package writers

import "os"

// OSSink is the real-filesystem split.Sink.
type OSSink struct{}

// MkdirAll creates dir and any missing parents; it is a no-op when dir
// already exists. A path that exists as a non-directory is an error.
func (OSSink) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFile writes data to path, truncating any existing file.
func (OSSink) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
