package report

import (
	"errors"
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/google/uuid"
)

var ErrNoLines = errors.New("success rate is undefined for a run without lines")

type Report struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Errors  Tally   `json:"errors"`
	Entries []Entry `json:"entries"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Source      string          `json:"source,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  time.Time       `json:"finished_at"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

type Summary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// SuccessRate returns the percentage of successful lines.
func (s Summary) SuccessRate() (float64, error) {
	if s.Total == 0 {
		return 0, ErrNoLines
	}
	return float64(s.Successful) / float64(s.Total) * 100, nil
}

// Tally counts failures per error category. Its fields sum to Summary.Failed.
type Tally struct {
	Lexical   int `json:"lexical"`
	Syntactic int `json:"syntactic"`
	Other     int `json:"other"`
}

func (t Tally) Total() int {
	return t.Lexical + t.Syntactic + t.Other
}

type Entry struct {
	LineNumber int             `json:"line_number"`
	Sentence   string          `json:"sentence"`
	Success    bool            `json:"success"`
	Reason     compiler.Reason `json:"reason"`
	Message    string          `json:"message,omitempty"`
}
