package compiler

import (
	"time"

	"github.com/DjordjeVuckovic/little-english/internal/token"
	"github.com/google/uuid"
)

// Reason classifies why a line failed. It is fixed when the result is created.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmptyLine
	ReasonLexical
	ReasonSyntactic
	ReasonOther
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmptyLine:
		return "empty_line"
	case ReasonLexical:
		return "lexical"
	case ReasonSyntactic:
		return "syntactic"
	default:
		return "other"
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Reason) UnmarshalText(text []byte) error {
	*r = ParseReason(string(text))
	return nil
}

// ParseReason is the inverse of Reason.String. Unknown names map to ReasonOther.
func ParseReason(s string) Reason {
	switch s {
	case "none", "":
		return ReasonNone
	case "empty_line":
		return ReasonEmptyLine
	case "lexical":
		return ReasonLexical
	case "syntactic":
		return ReasonSyntactic
	default:
		return ReasonOther
	}
}

// ErrorCategory is the bucket a failure is tallied under in the error summary.
type ErrorCategory int

const (
	CategoryNone ErrorCategory = iota
	CategoryLexical
	CategorySyntactic
	CategoryOther
)

// Category maps the reason to its error-summary bucket. Blank lines count as other.
func (r Reason) Category() ErrorCategory {
	switch r {
	case ReasonNone:
		return CategoryNone
	case ReasonLexical:
		return CategoryLexical
	case ReasonSyntactic:
		return CategorySyntactic
	default:
		return CategoryOther
	}
}

// LineResult is the outcome of compiling one input line.
type LineResult struct {
	LineNumber int           `json:"line_number"`
	Sentence   string        `json:"sentence"`
	Success    bool          `json:"success"`
	Reason     Reason        `json:"reason"`
	Message    string        `json:"message,omitempty"`
	Tokens     []token.Token `json:"tokens,omitempty"`
}

// Run is one batch compilation. Results are ordered by line number.
type Run struct {
	ID         uuid.UUID    `json:"id"`
	Source     string       `json:"source"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Results    []LineResult `json:"results"`
}

func (r *Run) Successful() int {
	n := 0
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}
