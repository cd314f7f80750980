package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/token"
	"github.com/google/uuid"
)

const (
	kindRun  = "run"
	kindLine = "line"
)

// Document is one compiled line, denormalized with its run metadata. Every run
// also gets a kindRun header document at line 0, so runs without lines exist.
type Document struct {
	Kind       string        `json:"kind"`
	RunID      string        `json:"run_id"`
	Source     string        `json:"source"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	LineNumber int           `json:"line_number"`
	Sentence   string        `json:"sentence"`
	Success    bool          `json:"success"`
	Reason     string        `json:"reason"`
	Message    string        `json:"message,omitempty"`
	Tokens     []token.Token `json:"tokens,omitempty"`
	IndexedAt  time.Time     `json:"indexed_at"`
}

func documentID(runID uuid.UUID, line int) string {
	return fmt.Sprintf("%s-%d", runID, line)
}

func toDocuments(run *compiler.Run, indexedAt time.Time) []Document {
	docs := make([]Document, 0, len(run.Results)+1)
	docs = append(docs, Document{
		Kind:       kindRun,
		RunID:      run.ID.String(),
		Source:     run.Source,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		IndexedAt:  indexedAt,
	})
	for _, res := range run.Results {
		docs = append(docs, Document{
			Kind:       kindLine,
			RunID:      run.ID.String(),
			Source:     run.Source,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
			LineNumber: res.LineNumber,
			Sentence:   res.Sentence,
			Success:    res.Success,
			Reason:     res.Reason.String(),
			Message:    res.Message,
			Tokens:     res.Tokens,
			IndexedAt:  indexedAt,
		})
	}
	return docs
}

// fromDocuments rebuilds a run from documents already sorted by line number.
func fromDocuments(id uuid.UUID, docs []Document) *compiler.Run {
	run := &compiler.Run{ID: id}
	for i, d := range docs {
		if i == 0 {
			run.Source = d.Source
			run.StartedAt = d.StartedAt
			run.FinishedAt = d.FinishedAt
		}
		if d.Kind == kindRun {
			continue
		}
		run.Results = append(run.Results, compiler.LineResult{
			LineNumber: d.LineNumber,
			Sentence:   d.Sentence,
			Success:    d.Success,
			Reason:     compiler.ParseReason(d.Reason),
			Message:    d.Message,
			Tokens:     d.Tokens,
		})
	}
	return run
}
