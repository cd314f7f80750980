package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedReport = `REPORTE DE COMPILACIÓN - LITTLE ENGLISH
==================================================

ESTADÍSTICAS GENERALES:
Total de líneas procesadas: 4
Compilaciones exitosas: 1
Compilaciones fallidas: 3
Tasa de éxito: 25.0%

RESULTADOS DETALLADOS:
------------------------------

Línea 1: 'the cat runs.'
Estado: ✓ ÉXITO

Línea 2: (línea vacía)
Estado: ✗ FALLO
Error: Línea vacía

Línea 3: 'invalid_word runs.'
Estado: ✗ FALLO
Error: Error léxico: Token no reconocido: 'invalid_word' en posición 0

Línea 4: 'the cat.'
Estado: ✗ FALLO
Error: Error sintáctico: Se esperaba VERB, pero se encontró DOT: '.'

RESUMEN DE ERRORES:
--------------------
Errores léxicos: 1
Errores sintácticos: 1
Otros errores: 1
`

func compile(lines ...string) *compiler.Run {
	return compiler.New().CompileLines(lines)
}

func render(t *testing.T, r *Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteText(r, &buf))
	return buf.String()
}

func TestWriteText_Mixed(t *testing.T) {
	r := Generate(compile("the cat runs.", "", "invalid_word runs.", "the cat."))
	assert.Equal(t, mixedReport, render(t, r))
}

func TestWriteText_AllSuccessfulOmitsErrorSummary(t *testing.T) {
	out := render(t, Generate(compile("the cat runs.", "a big dog walks.", "the man reads a book.")))

	assert.Contains(t, out, "Tasa de éxito: 100.0%\n")
	assert.NotContains(t, out, "RESUMEN DE ERRORES")
	assert.NotContains(t, out, "Error:")
}

func TestWriteText_EmptyRun(t *testing.T) {
	out := render(t, Generate(compile()))

	assert.Contains(t, out, "Total de líneas procesadas: 0\n")
	assert.Contains(t, out, "Tasa de éxito: 0.0%\n")
	assert.NotContains(t, out, "Línea ")
}

func TestWriteText_RateRounding(t *testing.T) {
	out := render(t, Generate(compile("the cat runs.", "the cat.", "the cat.")))
	assert.Contains(t, out, "Tasa de éxito: 33.3%\n")
}

func TestWriteText_Idempotent(t *testing.T) {
	lines := []string{"the cat runs.", "runs the cat.", "", "a small cat sleeps on the tree."}
	first := render(t, Generate(compile(lines...)))
	second := render(t, Generate(compile(lines...)))
	assert.Equal(t, first, second)
}

func TestGenerate_Invariants(t *testing.T) {
	runs := [][]string{
		{},
		{""},
		{"the cat runs.", "the cat runs."},
		{"x", "", "the cat.", "the cat runs. the", "a dog is."},
	}

	for _, lines := range runs {
		r := Generate(compile(lines...))
		assert.Equal(t, len(lines), r.Summary.Total)
		assert.Equal(t, r.Summary.Total, r.Summary.Successful+r.Summary.Failed)
		assert.Equal(t, r.Summary.Failed, r.Errors.Total())
		assert.Len(t, r.Entries, len(lines))
	}
}

func TestGenerate_TalliesByReasonNotMessage(t *testing.T) {
	run := &compiler.Run{Results: []compiler.LineResult{
		{LineNumber: 1, Reason: compiler.ReasonLexical, Message: "sintáctico"},
		{LineNumber: 2, Reason: compiler.ReasonSyntactic, Message: "léxico"},
		{LineNumber: 3, Reason: compiler.ReasonEmptyLine},
		{LineNumber: 4, Reason: compiler.ReasonOther},
		{LineNumber: 5, Success: true},
	}}

	r := Generate(run)
	assert.Equal(t, Tally{Lexical: 1, Syntactic: 1, Other: 2}, r.Errors)
	assert.Equal(t, Summary{Total: 5, Successful: 1, Failed: 4}, r.Summary)
}

func TestSummary_SuccessRate(t *testing.T) {
	_, err := Summary{}.SuccessRate()
	assert.ErrorIs(t, err, ErrNoLines)

	rate, err := Summary{Total: 4, Successful: 3, Failed: 1}.SuccessRate()
	require.NoError(t, err)
	assert.InDelta(t, 75.0, rate, 1e-9)
}

func TestWriteTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	r := Generate(compile("the cat runs.", "", "invalid_word runs.", "the cat."))

	require.NoError(t, WriteTextFile(r, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mixedReport, string(data))
}

func TestWriteTextFile_BadPath(t *testing.T) {
	err := WriteTextFile(Generate(compile()), filepath.Join(t.TempDir(), "missing", "out.txt"))
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	run := compile("the cat runs.", "the cat.")
	run.Source = "input.txt"

	require.NoError(t, WriteJSON(Generate(run), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, run.ID, decoded.Meta.RunID)
	assert.Equal(t, "input.txt", decoded.Meta.Source)
	assert.Equal(t, Summary{Total: 2, Successful: 1, Failed: 1}, decoded.Summary)
	assert.Equal(t, compiler.ReasonSyntactic, decoded.Entries[1].Reason)
}
