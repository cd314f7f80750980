package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/DjordjeVuckovic/little-english/internal/storage/es"
	"github.com/DjordjeVuckovic/little-english/internal/storage/pg"
	"github.com/DjordjeVuckovic/little-english/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

var validTypes = []storage.Type{storage.PG, storage.ES, storage.InMem, storage.None}

// LoadEnv reads STORAGE_TYPE and the settings of the selected backend.
// An unset STORAGE_TYPE falls back to defaultType.
func LoadEnv(defaultType storage.Type) (*StorageConfig, error) {
	storageType := storage.Type(strings.TrimSpace(os.Getenv("STORAGE_TYPE")))
	if storageType == "" {
		slog.Debug("STORAGE_TYPE is not set, using default", "default", defaultType)
		storageType = defaultType
	}
	if !isValidType(storageType) {
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType, validTypes)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", v)
			}
			cfg.Pg.MaxConns = int32(n)
		}
		if cfg.Pg.ConnStr == "" {
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "little_english_lines"
		}
		if len(cfg.Es.Addresses) == 0 {
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	}

	return cfg, nil
}

func isValidType(t storage.Type) bool {
	for _, v := range validTypes {
		if v == t {
			return true
		}
	}
	return false
}
