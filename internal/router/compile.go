package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/little-english/internal/apperr"
	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/dto"
	"github.com/DjordjeVuckovic/little-english/internal/lexer"
	"github.com/DjordjeVuckovic/little-english/internal/lexicon"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/DjordjeVuckovic/little-english/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxBatchLines caps the number of lines accepted by one batch request.
const MaxBatchLines = 10000

type CompileRouter struct {
	e        *echo.Echo
	storer   storage.RunStorer
	compiler *compiler.Compiler
}

type CompileRouterOption func(*CompileRouter)

func WithCompiler(c *compiler.Compiler) CompileRouterOption {
	return func(r *CompileRouter) {
		r.compiler = c
	}
}

func NewCompileRouter(e *echo.Echo, storer storage.RunStorer, opts ...CompileRouterOption) *CompileRouter {
	r := &CompileRouter{
		e:        e,
		storer:   storer,
		compiler: compiler.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CompileRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.GET("/vocabulary", r.vocabularyHandler)
	g.POST("/tokenize", r.tokenizeHandler)
	g.POST("/compile", r.compileHandler)
	g.POST("/compile/batch", r.batchHandler)
	g.GET("/runs/:id", r.getRunHandler)
	g.GET("/runs/:id/results", r.runResultsHandler)
}

func (r *CompileRouter) vocabularyHandler(c echo.Context) error {
	resp := dto.VocabularyResponse{
		Size:       lexicon.Size(),
		Categories: make(map[string][]string),
	}
	for _, cat := range lexicon.Categories() {
		resp.Categories[cat.String()] = lexicon.Words(cat)
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *CompileRouter) tokenizeHandler(c echo.Context) error {
	req, err := bindSentence(c)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(req.Sentence)
	if err != nil {
		var lexErr *lexer.LexicalError
		if errors.As(err, &lexErr) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{
				"error":  err.Error(),
				"word":   lexErr.Word,
				"offset": lexErr.Offset,
			})
		}
		return apperr.NewValidationWrap("invalid sentence", err)
	}

	return c.JSON(http.StatusOK, dto.TokenizeResponse{Sentence: req.Sentence, Tokens: tokens})
}

func (r *CompileRouter) compileHandler(c echo.Context) error {
	req, err := bindSentence(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.compiler.CompileLine(1, req.Sentence))
}

func (r *CompileRouter) batchHandler(c echo.Context) error {
	var req dto.BatchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Lines) == 0 {
		return apperr.NewValidation("lines must not be empty")
	}
	if len(req.Lines) > MaxBatchLines {
		return apperr.NewValidation("too many lines in one batch")
	}

	run := r.compiler.CompileLines(req.Lines)
	run.Source = req.Source

	if err := r.storer.SaveRun(c.Request().Context(), run); err != nil {
		slog.Error("Failed to persist run", "id", run.ID, "error", err)
	}

	return c.JSON(http.StatusOK, dto.NewRunResponse(run))
}

func (r *CompileRouter) getRunHandler(c echo.Context) error {
	run, err := r.loadRun(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewRunResponse(run))
}

// runResultsHandler pages through the line results of a stored run.
// ?failed=true keeps only failed lines.
func (r *CompileRouter) runResultsHandler(c echo.Context) error {
	var q dto.ResultsQuery
	if err := c.Bind(&q); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}

	run, err := r.loadRun(c)
	if err != nil {
		return err
	}

	results := run.Results
	if q.FailedOnly {
		results = make([]compiler.LineResult, 0, len(run.Results))
		for _, res := range run.Results {
			if !res.Success {
				results = append(results, res)
			}
		}
	}

	return c.JSON(http.StatusOK, pagination.Paginate(results, q.OffsetRequest))
}

func (r *CompileRouter) loadRun(c echo.Context) (*compiler.Run, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid run id", err)
	}

	run, err := r.storer.GetRun(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			return nil, apperr.NewNotFound("run", id.String())
		}
		return nil, err
	}
	return run, nil
}

func bindSentence(c echo.Context) (*dto.SentenceRequest, error) {
	var req dto.SentenceRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Sentence == "" {
		return nil, apperr.NewValidation("sentence is required")
	}
	return &req, nil
}
