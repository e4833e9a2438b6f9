package persistence

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplec/utils/logging"
)

func TestMetadataMissingFileYieldsEmptyDocument(t *testing.T) {
	store, logger := newTestStore(t)
	require.NoError(t, os.Remove(store.metadataPath()))

	// bypass the cache to force a fresh read
	fresh := &SubmissionStore{baseDir: store.BaseDir(), logger: logger}
	fresh.mu.Lock()
	doc, err := fresh.loadMetadataLocked()
	fresh.mu.Unlock()

	require.NoError(t, err)
	assert.Empty(t, doc)
	assert.True(t, logger.HasLogEntryContaining(logging.WarningLevel, "starting empty"))
}

func TestMetadataCorruptFileIsStorageError(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(store.metadataPath(), []byte("{not json"), 0644))

	fresh := &SubmissionStore{baseDir: store.BaseDir(), logger: logging.NewMockLogger()}
	_, _, err := fresh.LoadSubmission("anything")
	assert.ErrorIs(t, err, ErrStorage)
}

func TestMetadataPersistsAcrossInstances(t *testing.T) {
	logger := logging.NewMockLogger()
	baseDir := t.TempDir()

	first, err := New(baseDir, logger)
	require.NoError(t, err)
	require.NoError(t, first.StoreSubmission("a1", []string{"line"}))

	second, err := New(baseDir, logger)
	require.NoError(t, err)
	payload, entry, err := second.LoadSubmission("a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"line"}, payload)
	assert.Equal(t, 1, entry.Lines)
}

func TestEntryIndexedTime(t *testing.T) {
	now := time.Now().UTC()
	entry := Entry{IndexedAt: now.Format(time.RFC3339Nano)}

	parsed, err := entry.IndexedTime()
	require.NoError(t, err)
	assert.WithinDuration(t, now, parsed, time.Second)

	_, err = Entry{IndexedAt: "2026-99-99"}.IndexedTime()
	assert.Error(t, err)
}
