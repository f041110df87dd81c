// internal/records/elasticsearch.go
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	stderrors "police-assistant/internal/common/errors"
	"police-assistant/internal/models"
)

// ElasticsearchCaseSearch serves the free-text case search from an
// Elasticsearch index. It implements CaseSearcher only; record lookups
// stay on the primary store.
type ElasticsearchCaseSearch struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchCaseSearch(client *elasticsearch.Client, index string) *ElasticsearchCaseSearch {
	return &ElasticsearchCaseSearch{client: client, index: index}
}

func (s *ElasticsearchCaseSearch) Search(ctx context.Context, query string) ([]models.CaseRecord, error) {
	body := map[string]interface{}{
		"size": 20,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"case_number^3", "crime_type^2", "location^2", "description"},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, stderrors.NewStoreQueryFailedError("es query encode", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, stderrors.NewStoreQueryFailedError("es search", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, stderrors.NewStoreQueryFailedError("es search", fmt.Errorf("elasticsearch returned status %s", res.Status()))
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				Source models.CaseRecord `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, stderrors.NewStoreQueryFailedError("es response decode", err)
	}

	out := make([]models.CaseRecord, 0, len(envelope.Hits.Hits))
	for _, hit := range envelope.Hits.Hits {
		out = append(out, hit.Source)
	}
	return out, nil
}
