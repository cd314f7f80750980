// Package compiler drives the lexical and syntactic stages over a batch of
// lines, isolating failures per line.
package compiler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/little-english/internal/lexer"
	"github.com/DjordjeVuckovic/little-english/internal/parser"
	"github.com/DjordjeVuckovic/little-english/internal/reader"
	"github.com/DjordjeVuckovic/little-english/internal/token"
	"github.com/google/uuid"
)

const (
	MsgSuccess   = "Compilación exitosa"
	MsgEmptyLine = "Línea vacía"

	prefixLexical    = "Error léxico: "
	prefixSyntactic  = "Error sintáctico: "
	prefixUnexpected = "Error inesperado: "
)

// CheckFunc validates a token sequence; nil means the sentence is valid.
type CheckFunc func(tokens []token.Token) error

type Compiler struct {
	tokenizer lexer.Tokenizer
	check     CheckFunc
	now       func() time.Time
}

type Option func(*Compiler)

func WithTokenizer(t lexer.Tokenizer) Option {
	return func(c *Compiler) {
		c.tokenizer = t
	}
}

func WithChecker(check CheckFunc) Option {
	return func(c *Compiler) {
		c.check = check
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.now = now
	}
}

func New(opts ...Option) *Compiler {
	c := &Compiler{
		tokenizer: lexer.NewTokenizer(),
		check:     parser.Check,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CompileFile loads every line of the input before compiling any of them.
// Only I/O faults are returned as errors.
func (c *Compiler) CompileFile(path string) (*Run, error) {
	return c.CompileFrom(path, reader.NewFileLineReader(path))
}

func (c *Compiler) CompileFrom(source string, r reader.LineReader) (*Run, error) {
	lines, err := r.ReadLines()
	if err != nil {
		return nil, err
	}
	run := c.CompileLines(lines)
	run.Source = source
	return run, nil
}

// CompileLines compiles lines in order, numbering them from 1.
func (c *Compiler) CompileLines(lines []string) *Run {
	run := &Run{
		ID:        uuid.New(),
		StartedAt: c.now(),
		Results:   make([]LineResult, 0, len(lines)),
	}

	for i, line := range lines {
		res := c.CompileLine(i+1, line)
		if !res.Success {
			slog.Debug("Line failed", "line", res.LineNumber, "reason", res.Reason, "message", res.Message)
		}
		run.Results = append(run.Results, res)
	}

	run.FinishedAt = c.now()
	return run
}

// CompileLine never fails: every outcome, including a panic in either stage,
// is recorded in the returned result.
func (c *Compiler) CompileLine(lineNumber int, line string) LineResult {
	sentence := strings.TrimSpace(line)
	res := LineResult{LineNumber: lineNumber, Sentence: sentence}

	if sentence == "" {
		res.Reason = ReasonEmptyLine
		res.Message = MsgEmptyLine
		return res
	}

	tokens, err := c.tokenize(sentence)
	if err != nil {
		return fail(res, classifyLexical(err), err)
	}

	if err := c.validate(tokens); err != nil {
		return fail(res, classifySyntactic(err), err)
	}

	res.Success = true
	res.Message = MsgSuccess
	res.Tokens = tokens
	return res
}

func (c *Compiler) tokenize(sentence string) (tokens []token.Token, err error) {
	defer recoverStage("tokenizer", &err)
	return c.tokenizer.Tokenize(sentence)
}

func (c *Compiler) validate(tokens []token.Token) (err error) {
	defer recoverStage("syntax checker", &err)
	return c.check(tokens)
}

// StageFault wraps a panic raised inside one of the stages.
type StageFault struct {
	Stage string
	Value any
}

func (f *StageFault) Error() string {
	return fmt.Sprintf("%s: %v", f.Stage, f.Value)
}

func recoverStage(stage string, err *error) {
	if v := recover(); v != nil {
		slog.Error("Stage panicked", "stage", stage, "panic", v)
		*err = &StageFault{Stage: stage, Value: v}
	}
}

func classifyLexical(err error) Reason {
	var lexErr *lexer.LexicalError
	if errors.As(err, &lexErr) || errors.Is(err, lexer.ErrEmptyInput) {
		return ReasonLexical
	}
	return ReasonOther
}

func classifySyntactic(err error) Reason {
	if parser.IsSyntaxError(err) {
		return ReasonSyntactic
	}
	return ReasonOther
}

func fail(res LineResult, reason Reason, err error) LineResult {
	res.Reason = reason
	switch reason {
	case ReasonLexical:
		res.Message = prefixLexical + err.Error()
	case ReasonSyntactic:
		res.Message = prefixSyntactic + err.Error()
	default:
		res.Message = prefixUnexpected + err.Error()
	}
	return res
}
