package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]compiler.Run
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]compiler.Run),
	}
}

func (s *InMemStorer) SaveRun(ctx context.Context, run *compiler.Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	cp := *run
	cp.Results = append([]compiler.LineResult(nil), run.Results...)

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[run.ID] = cp

	slog.Debug("Saved run to in-memory storage", "id", run.ID, "lines", len(run.Results))
	return nil
}

func (s *InMemStorer) GetRun(ctx context.Context, id uuid.UUID) (*compiler.Run, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	run, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrRunNotFound
	}
	run.Results = append([]compiler.LineResult(nil), run.Results...)
	return &run, nil
}

func (s *InMemStorer) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.storage)
}
