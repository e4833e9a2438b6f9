package logging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amplec/utils/indexer"
)

const indexTimeout = 5 * time.Second

// indexSink ships every record to a remote index so operators can search
// log history next to the rest of the project's indexed data.
type indexSink struct {
	client      indexer.Client
	index       string
	serviceName string
}

func newIndexSink(config *Config) (Sink, error) {
	client, err := indexer.New(config.IndexURL, config.IndexUser, config.APIKey)
	if err != nil {
		return nil, err
	}
	return &indexSink{
		client:      client,
		index:       config.IndexName,
		serviceName: config.ServiceName,
	}, nil
}

// newIndexSinkWithClient is the injectable variant used by tests.
func newIndexSinkWithClient(client indexer.Client, index, serviceName string) Sink {
	return &indexSink{client: client, index: index, serviceName: serviceName}
}

func (s *indexSink) Emit(record Record) error {
	doc := map[string]interface{}{
		"@timestamp": record.Time.Format(time.RFC3339Nano),
		"service":    s.serviceName,
		"level":      record.Level.String(),
		"message":    record.Message,
		"call_trace": renderTrace(record.CallTrace),
	}

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	return s.client.Index(ctx, s.index, uuid.NewString(), doc)
}

func (s *indexSink) Close() error {
	return s.client.Close()
}
