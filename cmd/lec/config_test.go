package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *FileConfig
		wantErr bool
	}{
		{
			name:  "defaults",
			input: "{}",
			want:  &FileConfig{LogLevel: "warn", Storage: storage.None},
		},
		{
			name:  "full",
			input: "log_level: debug\njson_report: out.json\nstorage: pg\n",
			want:  &FileConfig{LogLevel: "debug", JSONReport: "out.json", Storage: storage.PG},
		},
		{name: "bad level", input: "log_level: loud\n", wantErr: true},
		{name: "bad storage", input: "storage: redis\n", wantErr: true},
		{name: "bad yaml", input: "log_level: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\njson_report: a.json\n"), 0o644))

	fc, err := cliConfig{ConfigPath: path, LogLevel: "debug", JSONPath: "b.json"}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "debug", fc.LogLevel)
	assert.Equal(t, "b.json", fc.JSONReport)
}

func TestResolve_MissingFile(t *testing.T) {
	_, err := cliConfig{ConfigPath: filepath.Join(t.TempDir(), "none.yaml")}.resolve()
	assert.Error(t, err)
}
