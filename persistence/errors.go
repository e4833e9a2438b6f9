package persistence

import (
	"errors"
	"fmt"
)

// Error taxonomy of the store. Callers classify failures with errors.Is;
// the two not-found causes both satisfy ErrNotFound while staying
// distinguishable from each other.
var (
	// ErrStorage marks filesystem write or metadata document failures
	ErrStorage = errors.New("storage failure")

	// ErrNotFound marks a submission that cannot be loaded
	ErrNotFound = errors.New("submission not found")

	// ErrMetadataMissing is a not-found caused by an absent metadata entry
	ErrMetadataMissing = fmt.Errorf("%w: no metadata entry", ErrNotFound)

	// ErrPayloadMissing is a not-found caused by a metadata entry whose
	// payload file is gone, which points at an inconsistent store
	ErrPayloadMissing = fmt.Errorf("%w: payload file missing", ErrNotFound)

	// ErrInvalidID rejects empty ids and ids that would escape the base directory
	ErrInvalidID = errors.New("invalid submission id")
)
