package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

// readPageSize is the number of documents fetched per search_after page.
const readPageSize = 1000

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

// SaveRun bulk-indexes a run header plus one document per line.
func (s *Storer) SaveRun(ctx context.Context, run *compiler.Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	docs := toDocuments(run, time.Now())

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    2,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to marshal document", "error", err, "line", doc.LineNumber)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: documentID(run.ID, doc.LineNumber),
			Body:       bytes.NewReader(body),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "line", doc.LineNumber)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Run indexed",
		"id", run.ID,
		"successful", successful.Load(),
		"failed", failed.Load(),
		"index", s.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d documents", n, len(docs))
	}
	return nil
}

// GetRun pages through the run's documents in line order with search_after.
func (s *Storer) GetRun(ctx context.Context, id uuid.UUID) (*compiler.Run, error) {
	asc := sortorder.Asc

	var (
		docs  []Document
		after []types.FieldValue
	)
	for {
		req := s.client.Search().
			Index(s.indexName).
			Query(&types.Query{
				Term: map[string]types.TermQuery{
					"run_id": {Value: id.String()},
				},
			}).
			Sort(&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"line_number": {Order: &asc},
				},
			}).
			Size(readPageSize)
		if after != nil {
			req = req.SearchAfter(after...)
		}

		res, err := req.Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to search run: %w", err)
		}

		hits := res.Hits.Hits
		for _, hit := range hits {
			var doc Document
			if err := json.Unmarshal(hit.Source_, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal document: %w", err)
			}
			docs = append(docs, doc)
		}

		if len(hits) < readPageSize {
			break
		}
		after = hits[len(hits)-1].Sort
	}

	if len(docs) == 0 {
		return nil, storage.ErrRunNotFound
	}

	return fromDocuments(id, docs), nil
}

func (s *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(lineMappings()).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", s.indexName)
	return nil
}

func lineMappings() *types.TypeMapping {
	sentence := types.NewTextProperty()
	sentence.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	tokensEnabled := false
	tokens := types.NewObjectProperty()
	tokens.Enabled = &tokensEnabled

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"kind":        types.NewKeywordProperty(),
			"run_id":      types.NewKeywordProperty(),
			"source":      types.NewKeywordProperty(),
			"started_at":  types.NewDateProperty(),
			"finished_at": types.NewDateProperty(),
			"line_number": types.NewIntegerNumberProperty(),
			"sentence":    sentence,
			"success":     types.NewBooleanProperty(),
			"reason":      types.NewKeywordProperty(),
			"message":     types.NewTextProperty(),
			"tokens":      tokens,
			"indexed_at":  types.NewDateProperty(),
		},
	}
}
