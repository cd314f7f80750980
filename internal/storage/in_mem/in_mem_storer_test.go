package in_mem

import (
	"context"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()
	run := compiler.New().CompileLines([]string{"the cat runs.", "", "the cat."})

	require.NoError(t, s.SaveRun(ctx, run))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)

	got.Results[0].Sentence = "mutated"
	again, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "the cat runs.", again.Results[0].Sentence)
}

func TestInMemStorer_AssignsID(t *testing.T) {
	s := NewInMemStorer()
	run := &compiler.Run{}
	require.NoError(t, s.SaveRun(context.Background(), run))
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, 1, s.Len())
}

func TestInMemStorer_NotFound(t *testing.T) {
	_, err := NewInMemStorer().GetRun(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}

func TestInMemStorer_Concurrent(t *testing.T) {
	s := NewInMemStorer()
	c := compiler.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SaveRun(context.Background(), c.CompileLines([]string{"a dog is."}))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
}
