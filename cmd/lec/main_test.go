package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORAGE_TYPE", "")
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oraciones.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Usage(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "one arg", args: []string{"in.txt"}},
		{name: "three args", args: []string{"a", "b", "c"}},
		{name: "unknown flag", args: []string{"-nope", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.args, &out)
			assert.Equal(t, exitFail, code)
			assert.Contains(t, out.String(), "Uso: lec <archivo_entrada> <archivo_salida>")
		})
	}
}

func TestRun_Success(t *testing.T) {
	isolateEnv(t)
	in := writeInput(t, "the cat runs.\ninvalid_word runs.\n\na big dog walks.\n")
	out := filepath.Join(t.TempDir(), "resultados.txt")

	var console bytes.Buffer
	code := run([]string{in, out}, &console)
	require.Equal(t, exitOK, code, console.String())

	assert.Contains(t, console.String(), "Iniciando compilación de '"+in+"'...")
	assert.Contains(t, console.String(), "Compilación completada. Resultados guardados en '"+out+"'")
	assert.Contains(t, console.String(), "Estadísticas: 2/4 oraciones compiladas exitosamente")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "REPORTE DE COMPILACIÓN - LITTLE ENGLISH")
	assert.Contains(t, text, "Total de líneas procesadas: 4")
	assert.Contains(t, text, "Tasa de éxito: 50.0%")
	assert.Contains(t, text, "Errores léxicos: 1")
	assert.Contains(t, text, "Otros errores: 1")
}

func TestRun_EmptyInput(t *testing.T) {
	isolateEnv(t)
	in := writeInput(t, "")
	out := filepath.Join(t.TempDir(), "resultados.txt")

	var console bytes.Buffer
	require.Equal(t, exitOK, run([]string{in, out}, &console))
	assert.Contains(t, console.String(), "Estadísticas: 0/0 oraciones compiladas exitosamente")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tasa de éxito: 0.0%")
	assert.NotContains(t, string(data), "RESUMEN DE ERRORES")
}

func TestRun_MissingInput(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	var console bytes.Buffer
	code := run([]string{filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.txt")}, &console)
	assert.Equal(t, exitFail, code)
	assert.Contains(t, console.String(), "Error: El archivo de entrada '"+filepath.Join(dir, "nope.txt")+"' no existe")
	assert.NotContains(t, console.String(), "Error de E/O")
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))
}

func TestRun_UnwritableOutput(t *testing.T) {
	isolateEnv(t)
	in := writeInput(t, "the cat runs.\n")
	out := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	var console bytes.Buffer
	code := run([]string{in, out}, &console)
	assert.Equal(t, exitFail, code)
	assert.Contains(t, console.String(), "Error de E/O: ")
}

func TestRun_JSONSidecar(t *testing.T) {
	isolateEnv(t)
	in := writeInput(t, "the cat runs.\n")
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")

	var console bytes.Buffer
	code := run([]string{"-json", jsonPath, in, filepath.Join(dir, "out.txt")}, &console)
	require.Equal(t, exitOK, code, console.String())

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "summary")
}

func TestParseArgs_FlagsAnywhere(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "flags first", args: []string{"-json", "r.json", "in.txt", "out.txt"}},
		{name: "flags last", args: []string{"in.txt", "out.txt", "-json", "r.json"}},
		{name: "flags between", args: []string{"in.txt", "-json", "r.json", "out.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, ok := parseArgs(tt.args, &out)
			require.True(t, ok, out.String())
			assert.Equal(t, "in.txt", cfg.InputPath)
			assert.Equal(t, "out.txt", cfg.OutputPath)
			assert.Equal(t, "r.json", cfg.JSONPath)
		})
	}
}

func TestParseArgs_DoubleDash(t *testing.T) {
	var out bytes.Buffer
	cfg, ok := parseArgs([]string{"--", "-in.txt", "out.txt"}, &out)
	require.True(t, ok)
	assert.Equal(t, "-in.txt", cfg.InputPath)
	assert.Equal(t, "out.txt", cfg.OutputPath)
}

func TestRun_InMemStorageDoesNotChangeExitCode(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORAGE_TYPE", string(storage.InMem))
	in := writeInput(t, "the cat runs.\n")

	var console bytes.Buffer
	assert.Equal(t, exitOK, run([]string{in, filepath.Join(t.TempDir(), "out.txt")}, &console))
}

func TestRun_UnreachableStorageDoesNotChangeExitCode(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORAGE_TYPE", string(storage.PG))
	t.Setenv("PG_CONNECTION_STRING", "")
	in := writeInput(t, "the cat runs.\n")

	var console bytes.Buffer
	assert.Equal(t, exitOK, run([]string{in, filepath.Join(t.TempDir(), "out.txt")}, &console))
}

func TestRun_BadConfig(t *testing.T) {
	isolateEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "lec.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0o644))
	in := writeInput(t, "the cat runs.\n")

	var console bytes.Buffer
	code := run([]string{"-config", cfgPath, in, filepath.Join(t.TempDir(), "out.txt")}, &console)
	assert.Equal(t, exitFail, code)
	assert.Contains(t, console.String(), "invalid log level")
}

func TestRun_SampleInput(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "resultados.txt")

	var console bytes.Buffer
	require.Equal(t, exitOK, run([]string{filepath.Join("testdata", "oraciones.txt"), out}, &console))
	assert.Contains(t, console.String(), "Estadísticas: 4/9 oraciones compiladas exitosamente")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Errores léxicos: 1")
	assert.Contains(t, text, "Errores sintácticos: 3")
	assert.Contains(t, text, "Otros errores: 1")
	assert.Contains(t, text, "Tokens adicionales después del punto: the")
}
