// Package persistence stores named submissions as flat files under a base
// directory, with per-submission bookkeeping in a single JSON metadata
// document and an age-based cleanup sweep.
//
// A store instance serializes its own operations with an in-process mutex.
// Nothing synchronizes concurrent processes writing the same base
// directory: the metadata document is rewritten whole, so the last writer
// wins. The documented use case is a single-writer, single-process
// utility; a cross-process file lock would be an explicit upgrade, not an
// assumed fix.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amplec/utils/logging"
)

// DefaultRetentionDays is the retention window applied by the cleanup
// sweep that runs as a side effect of every store call.
const DefaultRetentionDays = 28

const payloadExtension = ".txt"

// SubmissionStore persists submissions under a base directory.
type SubmissionStore struct {
	baseDir string
	logger  logging.Logger

	mu     sync.Mutex
	doc    Document
	loaded bool
}

// New creates a store rooted at baseDir, creating the directory and an
// empty metadata document when absent.
func New(baseDir string, logger logging.Logger) (*SubmissionStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create base directory %s: %v", ErrStorage, baseDir, err)
	}

	store := &SubmissionStore{baseDir: baseDir, logger: logger}

	if _, err := os.Stat(store.metadataPath()); os.IsNotExist(err) {
		if err := store.saveMetadataLocked(make(Document)); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// StoreSubmission writes the payload lines to <base>/<id>.txt, upserts the
// metadata entry for id with the current time, persists the document and
// then runs a cleanup sweep with the default retention window.
func (s *SubmissionStore) StoreSubmission(id string, payload []string) error {
	if err := validateID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.payloadPath(id), []byte(joinLines(payload)), 0644); err != nil {
		return fmt.Errorf("%w: write payload for %q: %v", ErrStorage, id, err)
	}

	doc, err := s.loadMetadataLocked()
	if err != nil {
		return err
	}
	doc[id] = Entry{
		IndexedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Lines:     len(payload),
	}
	if err := s.saveMetadataLocked(doc); err != nil {
		return err
	}

	if _, err := s.cleanupLocked(DefaultRetentionDays); err != nil {
		return err
	}

	s.logger.Infof("stored submission %q in %s", id, s.payloadPath(id))
	return nil
}

// LoadSubmission returns the payload and the metadata entry for id. An
// absent metadata entry and a missing payload file are distinguishable
// through ErrMetadataMissing and ErrPayloadMissing; both satisfy
// ErrNotFound.
func (s *SubmissionStore) LoadSubmission(id string) ([]string, Entry, error) {
	if err := validateID(id); err != nil {
		return nil, Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadMetadataLocked()
	if err != nil {
		return nil, Entry{}, err
	}

	entry, ok := doc[id]
	if !ok {
		s.logger.Errorf("no metadata entry for submission %q", id)
		return nil, Entry{}, fmt.Errorf("submission %q: %w", id, ErrMetadataMissing)
	}

	data, err := os.ReadFile(s.payloadPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Errorf("payload file for submission %q not found", id)
			return nil, Entry{}, fmt.Errorf("submission %q: %w", id, ErrPayloadMissing)
		}
		return nil, Entry{}, fmt.Errorf("%w: read payload for %q: %v", ErrStorage, id, err)
	}

	s.logger.Infof("loaded submission %q", id)
	return splitLines(data), entry, nil
}

// LoadOnlyPayload returns just the payload lines for id, with the same
// failure modes as LoadSubmission.
func (s *SubmissionStore) LoadOnlyPayload(id string) ([]string, error) {
	payload, _, err := s.LoadSubmission(id)
	return payload, err
}

// CleanupSubmissions deletes every submission older than the given number
// of days, removing both the payload file and the metadata entry, and
// rewrites the document at most once at the end of the sweep. It returns
// the number of submissions removed. A submission aged exactly the
// threshold is retained.
func (s *SubmissionStore) CleanupSubmissions(olderThanDays int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleanupLocked(olderThanDays)
}

func (s *SubmissionStore) cleanupLocked(olderThanDays int) (int, error) {
	s.logger.Infof("cleaning up submissions older than %d days", olderThanDays)

	doc, err := s.loadMetadataLocked()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	var toDelete []string
	for id, entry := range doc {
		if entry.IndexedAt == "" {
			s.logger.Warningf("no indexed_at for submission %q, skipping", id)
			continue
		}
		indexedAt, err := entry.IndexedTime()
		if err != nil {
			s.logger.Warningf("cannot parse indexed_at for submission %q (value: %s): %v", id, entry.IndexedAt, err)
			continue
		}
		ageDays := int(now.Sub(indexedAt).Hours() / 24)
		if ageDays > olderThanDays {
			toDelete = append(toDelete, id)
		}
	}

	removed := 0
	for _, id := range toDelete {
		if err := os.Remove(s.payloadPath(id)); err != nil && !os.IsNotExist(err) {
			// keep the document consistent with what was already deleted
			if saveErr := s.saveMetadataLocked(doc); saveErr != nil {
				s.logger.Errorf("could not persist metadata document after partial sweep: %v", saveErr)
			}
			return removed, fmt.Errorf("%w: delete payload for %q: %v", ErrStorage, id, err)
		}
		delete(doc, id)
		removed++
		s.logger.Infof("deleted payload file for old submission %q", id)
	}

	// a sweep that removed nothing skips the rewrite
	if removed > 0 {
		if err := s.saveMetadataLocked(doc); err != nil {
			return removed, err
		}
		s.logger.Infof("deleted %d submissions older than %d days", removed, olderThanDays)
	} else {
		s.logger.Info("no old submissions found to delete")
	}

	return removed, nil
}

// BaseDir returns the directory the store writes under.
func (s *SubmissionStore) BaseDir() string {
	return s.baseDir
}

func (s *SubmissionStore) metadataPath() string {
	return filepath.Join(s.baseDir, metadataFileName)
}

func (s *SubmissionStore) payloadPath(id string) string {
	return filepath.Join(s.baseDir, id+payloadExtension)
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id must not be empty", ErrInvalidID)
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." || id != filepath.Base(id) {
		return fmt.Errorf("%w: id %q must stay inside the base directory", ErrInvalidID, id)
	}
	return nil
}

// joinLines renders a payload one entry per line, with a trailing newline
// unless the payload is empty.
func joinLines(payload []string) string {
	if len(payload) == 0 {
		return ""
	}
	return strings.Join(payload, "\n") + "\n"
}

// splitLines is the inverse of joinLines. Only a zero-length file is an
// empty payload; a file holding a single newline is the one-empty-line
// payload [""].
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
