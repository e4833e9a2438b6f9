package persistence

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
)

const metadataFileName = "metadata.json"

// Entry is the per-submission bookkeeping record kept in the metadata
// document.
type Entry struct {
	// IndexedAt is the RFC 3339 UTC time the submission was stored
	IndexedAt string `json:"indexed_at"`
	// Lines is the payload line count at store time
	Lines int `json:"lines"`
}

// IndexedTime parses the entry's indexing time.
func (e Entry) IndexedTime() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, e.IndexedAt)
}

// Document is the full metadata document: submission id -> entry.
// It is persisted as a single JSON file and always rewritten whole.
type Document map[string]Entry

// loadMetadataLocked returns the cached document, reading it from disk on
// first use. A missing file is the defined empty-document default, not an
// error; anything else wrong with the file surfaces as ErrStorage.
// Callers hold s.mu.
func (s *SubmissionStore) loadMetadataLocked() (Document, error) {
	if s.loaded {
		return s.doc, nil
	}

	data, err := os.ReadFile(s.metadataPath())
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warningf("metadata document %s missing, starting empty", s.metadataPath())
			s.doc = make(Document)
			s.loaded = true
			return s.doc, nil
		}
		return nil, fmt.Errorf("%w: read metadata document: %v", ErrStorage, err)
	}

	doc := make(Document)
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode metadata document: %v", ErrStorage, err)
	}

	s.doc = doc
	s.loaded = true
	return s.doc, nil
}

// saveMetadataLocked rewrites the whole document. Callers hold s.mu.
func (s *SubmissionStore) saveMetadataLocked(doc Document) error {
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode metadata document: %v", ErrStorage, err)
	}
	if err := os.WriteFile(s.metadataPath(), data, 0644); err != nil {
		return fmt.Errorf("%w: write metadata document: %v", ErrStorage, err)
	}
	s.doc = doc
	s.loaded = true
	return nil
}
