package dto

import (
	"time"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/report"
	"github.com/DjordjeVuckovic/little-english/internal/token"
	"github.com/DjordjeVuckovic/little-english/pkg/pagination"
	"github.com/google/uuid"
)

type SentenceRequest struct {
	Sentence string `json:"sentence"`
}

type BatchRequest struct {
	Source string   `json:"source,omitempty"`
	Lines  []string `json:"lines"`
}

type ResultsQuery struct {
	pagination.OffsetRequest
	FailedOnly bool `query:"failed"`
}

type TokenizeResponse struct {
	Sentence string        `json:"sentence"`
	Tokens   []token.Token `json:"tokens"`
}

type VocabularyResponse struct {
	Size       int                 `json:"size"`
	Categories map[string][]string `json:"categories"`
}

type RunResponse struct {
	ID          uuid.UUID             `json:"id"`
	Source      string                `json:"source,omitempty"`
	StartedAt   time.Time             `json:"started_at"`
	FinishedAt  time.Time             `json:"finished_at"`
	Summary     report.Summary        `json:"summary"`
	Errors      report.Tally          `json:"errors"`
	SuccessRate *float64              `json:"success_rate,omitempty"`
	Results     []compiler.LineResult `json:"results"`
}

func NewRunResponse(run *compiler.Run) RunResponse {
	r := report.Generate(run)
	resp := RunResponse{
		ID:         run.ID,
		Source:     run.Source,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Summary:    r.Summary,
		Errors:     r.Errors,
		Results:    run.Results,
	}
	if rate, err := r.Summary.SuccessRate(); err == nil {
		resp.SuccessRate = &rate
	}
	if resp.Results == nil {
		resp.Results = []compiler.LineResult{}
	}
	return resp
}
