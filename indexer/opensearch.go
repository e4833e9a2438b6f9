package indexer

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/disaster37/opensearch/v2"
)

type openSearchClient struct {
	client *opensearch.Client
}

// New creates a client for a remote index endpoint. The API key is sent
// as the basic-auth credential alongside the configured user.
func New(url, username, apiKey string) (Client, error) {
	options := []opensearch.ClientOptionFunc{
		opensearch.SetURL(url),
		opensearch.SetSniff(false),
		opensearch.SetHealthcheck(false),
	}
	if username != "" {
		options = append(options, opensearch.SetBasicAuth(username, apiKey))
	}
	return NewWithOptions(options...)
}

// NewWithOptions creates a client from raw opensearch client options.
// Example usage:
//
//	client, err := NewWithOptions(opensearch.SetURL("http://localhost:9200"))
func NewWithOptions(options ...opensearch.ClientOptionFunc) (Client, error) {
	client, err := opensearch.NewClient(options...)
	if err != nil {
		return nil, err
	}
	return &openSearchClient{client: client}, nil
}

func (c *openSearchClient) Index(ctx context.Context, index, id string, body interface{}) error {
	resp, err := c.client.Index().Index(index).Id(id).BodyJson(body).Do(ctx)
	if err != nil {
		return err
	}
	if resp.Result != "created" && resp.Result != "updated" {
		return fmt.Errorf("index error: %v", resp.Result)
	}
	return nil
}

func (c *openSearchClient) Get(ctx context.Context, index, id string, out interface{}) error {
	resp, err := c.client.Get().Index(index).Id(id).Do(ctx)
	if err != nil {
		return err
	}
	if !resp.Found {
		return fmt.Errorf("document not found")
	}
	return sonic.Unmarshal(resp.Source, out)
}

func (c *openSearchClient) Delete(ctx context.Context, index, id string) error {
	resp, err := c.client.Delete().Index(index).Id(id).Do(ctx)
	if err != nil {
		return err
	}
	if resp.Result != "deleted" {
		return fmt.Errorf("delete error: %v", resp.Result)
	}
	return nil
}

func (c *openSearchClient) Close() error {
	// opensearch.Client does not require explicit close
	return nil
}
