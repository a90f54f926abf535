package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// Ensure DownloadSink implements the interface.
var _ driven.DownloadSink = (*DownloadSink)(nil)

// DownloadSink writes exported documents into a directory.
// An existing file with the same name is replaced.
type DownloadSink struct {
	dir string
}

// NewDownloadSink creates a sink writing to dir.
// If dir is empty, the current working directory is used.
func NewDownloadSink(dir string) (*DownloadSink, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &DownloadSink{dir: abs}, nil
}

// Save writes data to dir/filename.
func (d *DownloadSink) Save(filename string, data []byte) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid download filename %q", filename)
	}
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	path := filepath.Join(d.dir, filename)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}

// Dir returns the download directory.
func (d *DownloadSink) Dir() string {
	return d.dir
}
