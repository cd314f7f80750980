package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/google/uuid"
)

// RunStorer persists compilation runs together with their line results.
type RunStorer interface {
	SaveRun(ctx context.Context, run *compiler.Run) error
	GetRun(ctx context.Context, id uuid.UUID) (*compiler.Run, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	None  Type = "none"
)

var ErrRunNotFound = errors.New("run not found")

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type"
)

func (e StorerError) Error() string {
	return string(e)
}

// NopStorer discards runs. It backs the "none" storage type.
type NopStorer struct{}

func (NopStorer) SaveRun(context.Context, *compiler.Run) error { return nil }

func (NopStorer) GetRun(context.Context, uuid.UUID) (*compiler.Run, error) {
	return nil, ErrRunNotFound
}
