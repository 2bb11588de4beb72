package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/odurisile/DNA-Insight/models"
	"github.com/odurisile/DNA-Insight/models/indexes"

	"github.com/Jeffail/gabs"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository struct {
	es    *es7.Client
	index string
	debug bool
}

func NewReportRepository(es *es7.Client, cfg *models.Config) *ReportRepository {
	return &ReportRepository{
		es:    es,
		index: cfg.Elasticsearch.ReportsIndex,
		debug: cfg.Debug,
	}
}

// EnsureIndex creates the reports index with its mapping when missing.
func (r *ReportRepository) EnsureIndex(ctx context.Context) error {
	existsRes, err := r.es.Indices.Exists([]string{r.index}, r.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("checking index %s: %w", r.index, err)
	}
	existsRes.Body.Close()
	if existsRes.StatusCode == 200 {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{"mappings": indexes.REPORT_INDEX_MAPPING})
	if err != nil {
		return err
	}

	res, err := r.es.Indices.Create(r.index,
		r.es.Indices.Create.WithContext(ctx),
		r.es.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("creating index %s: %w", r.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("creating index %s: %s", r.index, res.Status())
	}

	fmt.Printf("[%s] - Created index %s\n", time.Now(), r.index)
	return nil
}

func (r *ReportRepository) Save(ctx context.Context, report indexes.Report) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: report.Id,
		Body:       bytes.NewReader(b),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.es)
	if err != nil {
		return fmt.Errorf("indexing report %s: %w", report.Id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing report %s: %s", report.Id, res.Status())
	}

	if r.debug {
		fmt.Printf("[%s] - Stored report %s (%s)\n", time.Now(), report.Id, report.Kind)
	}
	return nil
}

func (r *ReportRepository) Get(ctx context.Context, id string) (*indexes.Report, error) {
	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"id": id,
			},
		},
		"size": 1,
	}
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	if r.debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("searching report %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, ErrReportNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("searching report %s: %s", id, res.Status())
	}

	parsed, err := gabs.ParseJSONBuffer(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	hits, _ := parsed.Path("hits.hits").Children()
	if len(hits) == 0 {
		return nil, ErrReportNotFound
	}

	var report indexes.Report
	if err := json.Unmarshal(hits[0].Path("_source").Bytes(), &report); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", id, err)
	}
	return &report, nil
}

// DeleteOlderThan removes reports created before cutoff and returns how many
// were deleted.
func (r *ReportRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"createdTime": map[string]interface{}{
					"lt": cutoff.UTC().Format(time.RFC3339),
				},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, err
	}

	res, err := r.es.DeleteByQuery(
		[]string{r.index},
		strings.NewReader(buf.String()),
		r.es.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting expired reports: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return 0, nil
	}
	if res.IsError() {
		return 0, fmt.Errorf("deleting expired reports: %s", res.Status())
	}

	parsed, err := gabs.ParseJSONBuffer(res.Body)
	if err != nil {
		return 0, fmt.Errorf("parsing delete response: %w", err)
	}

	deleted, _ := parsed.Path("deleted").Data().(float64)
	return int(deleted), nil
}
