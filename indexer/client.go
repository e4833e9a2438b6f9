package indexer

import "context"

// Client defines the interface for interacting with OpenSearch/Elasticsearch.
// The logging index sink is its only in-repo consumer, so the surface is
// intentionally small: single-document writes, reads and deletes.
type Client interface {
	// Index writes a single document
	Index(ctx context.Context, index string, id string, body interface{}) error

	// Get retrieves a document by ID
	Get(ctx context.Context, index string, id string, out interface{}) error

	// Delete removes a document by ID
	Delete(ctx context.Context, index string, id string) error

	// Close releases any resources held by the client
	Close() error
}
