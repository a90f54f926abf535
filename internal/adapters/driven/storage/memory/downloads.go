package memory

import (
	"sync"

	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
)

// Ensure DownloadSink implements the interface.
var _ driven.DownloadSink = (*DownloadSink)(nil)

// DownloadSink keeps exported files in memory, keyed by filename.
type DownloadSink struct {
	mu    sync.RWMutex
	files map[string][]byte
	order []string
}

// NewDownloadSink creates an empty sink.
func NewDownloadSink() *DownloadSink {
	return &DownloadSink{files: make(map[string][]byte)}
}

// Save records data under filename.
func (s *DownloadSink) Save(filename string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.files[filename]; !exists {
		s.order = append(s.order, filename)
	}
	s.files[filename] = append([]byte(nil), data...)
	return s.Dir() + "/" + filename, nil
}

// Dir returns a pseudo directory.
func (s *DownloadSink) Dir() string {
	return ":memory:"
}

// File returns the bytes saved under filename.
func (s *DownloadSink) File(filename string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[filename]
	return data, ok
}

// Filenames returns saved names in the order first written.
func (s *DownloadSink) Filenames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}
