package pg

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineResultRows(t *testing.T) {
	run := compiler.New().CompileLines([]string{"the cat runs.", "the cat."})

	rows, err := lineResultRows(run)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(lineResultColumns))
		assert.Equal(t, run.ID, row[0])
	}

	assert.Equal(t, 1, rows[0][1])
	assert.Equal(t, true, rows[0][3])
	assert.Equal(t, "none", rows[0][4])

	var tokens []token.Token
	require.NoError(t, json.Unmarshal(rows[0][6].([]byte), &tokens))
	assert.Len(t, tokens, 4)

	assert.Equal(t, "syntactic", rows[1][4])
	assert.Nil(t, rows[1][6])
}

func TestHealthChecker_NilPool(t *testing.T) {
	var pool *ConnectionPool
	assert.False(t, pool.Healthy(t.Context()))
}
