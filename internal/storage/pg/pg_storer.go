package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var lineResultColumns = []string{"run_id", "line_number", "sentence", "success", "reason", "message", "tokens"}

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.db}
}

// SaveRun writes the run row and bulk-copies its line results in one transaction.
func (s *Storer) SaveRun(ctx context.Context, run *compiler.Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	rows, err := lineResultRows(run)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	cmd := `
        INSERT INTO compile_runs (id, source, started_at, finished_at, total_lines, successful_lines)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err = tx.Exec(ctx, cmd,
		run.ID,
		run.Source,
		run.StartedAt,
		run.FinishedAt,
		len(run.Results),
		run.Successful(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"line_results"},
		lineResultColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert line results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	slog.Info("Run saved to PostgreSQL", "id", run.ID, "lines", copied)
	return nil
}

func lineResultRows(run *compiler.Run) ([][]any, error) {
	rows := make([][]any, len(run.Results))
	for i, res := range run.Results {
		var tokensJSON []byte
		if len(res.Tokens) > 0 {
			var err error
			tokensJSON, err = json.Marshal(res.Tokens)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal tokens for line %d: %w", res.LineNumber, err)
			}
		}
		rows[i] = []any{
			run.ID,
			res.LineNumber,
			res.Sentence,
			res.Success,
			res.Reason.String(),
			res.Message,
			tokensJSON,
		}
	}
	return rows, nil
}

func (s *Storer) GetRun(ctx context.Context, id uuid.UUID) (*compiler.Run, error) {
	run := &compiler.Run{ID: id}

	err := s.db.QueryRow(ctx,
		`SELECT source, started_at, finished_at FROM compile_runs WHERE id = $1`,
		id,
	).Scan(&run.Source, &run.StartedAt, &run.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	rows, err := s.db.Query(ctx, `
        SELECT line_number, sentence, success, reason, message, tokens
        FROM line_results
        WHERE run_id = $1
        ORDER BY line_number;
    `, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query line results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			res        compiler.LineResult
			reason     string
			tokensJSON []byte
		)
		if err := rows.Scan(&res.LineNumber, &res.Sentence, &res.Success, &reason, &res.Message, &tokensJSON); err != nil {
			return nil, fmt.Errorf("failed to scan line result: %w", err)
		}
		res.Reason = compiler.ParseReason(reason)
		if len(tokensJSON) > 0 {
			if err := json.Unmarshal(tokensJSON, &res.Tokens); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tokens for line %d: %w", res.LineNumber, err)
			}
		}
		run.Results = append(run.Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line results: %w", err)
	}

	return run, nil
}
