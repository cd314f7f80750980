package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/DjordjeVuckovic/little-english/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		cfg, err := LoadEnv(storage.None)
		require.NoError(t, err)
		assert.Equal(t, storage.None, cfg.Type)
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "mysql")
		_, err := LoadEnv(storage.None)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid STORAGE_TYPE")
	})

	t.Run("pg requires connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv(storage.None)
		assert.Error(t, err)
	})

	t.Run("pg", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgresql://localhost/test")
		cfg, err := LoadEnv(storage.None)
		require.NoError(t, err)
		require.NotNil(t, cfg.Pg)
		assert.Equal(t, "postgresql://localhost/test", cfg.Pg.ConnStr)
	})

	t.Run("pg max conns", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgresql://localhost/test")
		t.Setenv("PG_MAX_CONNS", "8")
		cfg, err := LoadEnv(storage.None)
		require.NoError(t, err)
		assert.Equal(t, int32(8), cfg.Pg.MaxConns)

		t.Setenv("PG_MAX_CONNS", "many")
		_, err = LoadEnv(storage.None)
		assert.Error(t, err)
	})

	t.Run("es", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "http://a:9200, http://b:9200,")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv(storage.None)
		require.NoError(t, err)
		require.NotNil(t, cfg.Es)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
		assert.Equal(t, "little_english_lines", cfg.Es.IndexName)
	})

	t.Run("es requires addresses", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", " ")
		_, err := LoadEnv(storage.None)
		assert.Error(t, err)
	})
}

func TestNewRunStorer(t *testing.T) {
	ctx := context.Background()

	s, err := NewRunStorer(ctx, StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &in_mem.InMemStorer{}, s.Storer)
	assert.True(t, s.HealthChecker.Healthy(ctx))

	s, err = NewRunStorer(ctx, StorageConfig{Type: storage.None})
	require.NoError(t, err)
	assert.IsType(t, storage.NopStorer{}, s.Storer)

	_, err = NewRunStorer(ctx, StorageConfig{Type: "redis"})
	assert.ErrorIs(t, err, storage.ErrUnsupportedStorer)

	_, err = NewRunStorer(ctx, StorageConfig{Type: storage.PG})
	assert.Error(t, err)
}
