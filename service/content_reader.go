package service

import (
	"log"
	"os"
)

// ContentReaderImpl implements the domain.ContentReader interface with
// fault-tolerant reads: a missing or unreadable file yields the no-content
// sentinel instead of an error, so one bad file never fails a caller's
// broader request.
type ContentReaderImpl struct{}

// NewContentReader creates a new content reader
func NewContentReader() *ContentReaderImpl {
	return &ContentReaderImpl{}
}

// Read returns the file's text and true, or "" and false when no content
// is available. Unexpected IO errors are logged for diagnostics and treated
// the same as a missing file.
func (r *ContentReaderImpl) Read(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("qmllink: failed to read %s: %v", path, err)
		}
		return "", false
	}
	return string(data), true
}
