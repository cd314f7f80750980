package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	title           = "REPORTE DE COMPILACIÓN - LITTLE ENGLISH"
	statsHeader     = "ESTADÍSTICAS GENERALES:"
	detailsHeader   = "RESULTADOS DETALLADOS:"
	errorsHeader    = "RESUMEN DE ERRORES:"
	emptyLineMarker = "(línea vacía)"
	statusOK        = "✓ ÉXITO"
	statusFailed    = "✗ FALLO"
)

// WriteText renders the compilation report. The error summary is written only
// when at least one line failed.
func WriteText(r *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, title)
	fmt.Fprintf(bw, "%s\n\n", strings.Repeat("=", 50))

	// An empty run renders as 0.0%.
	rate, _ := r.Summary.SuccessRate()

	fmt.Fprintln(bw, statsHeader)
	fmt.Fprintf(bw, "Total de líneas procesadas: %d\n", r.Summary.Total)
	fmt.Fprintf(bw, "Compilaciones exitosas: %d\n", r.Summary.Successful)
	fmt.Fprintf(bw, "Compilaciones fallidas: %d\n", r.Summary.Failed)
	fmt.Fprintf(bw, "Tasa de éxito: %.1f%%\n\n", rate)

	fmt.Fprintln(bw, detailsHeader)
	fmt.Fprintf(bw, "%s\n\n", strings.Repeat("-", 30))

	for _, e := range r.Entries {
		writeEntry(bw, e)
	}

	if r.Summary.Failed > 0 {
		fmt.Fprintln(bw, errorsHeader)
		fmt.Fprintln(bw, strings.Repeat("-", 20))
		fmt.Fprintf(bw, "Errores léxicos: %d\n", r.Errors.Lexical)
		fmt.Fprintf(bw, "Errores sintácticos: %d\n", r.Errors.Syntactic)
		fmt.Fprintf(bw, "Otros errores: %d\n", r.Errors.Other)
	}

	return bw.Flush()
}

func writeEntry(w io.Writer, e Entry) {
	if e.Sentence != "" {
		fmt.Fprintf(w, "Línea %d: '%s'\n", e.LineNumber, e.Sentence)
	} else {
		fmt.Fprintf(w, "Línea %d: %s\n", e.LineNumber, emptyLineMarker)
	}

	if e.Success {
		fmt.Fprintf(w, "Estado: %s\n", statusOK)
	} else {
		fmt.Fprintf(w, "Estado: %s\n", statusFailed)
		fmt.Fprintf(w, "Error: %s\n", e.Message)
	}

	fmt.Fprintln(w)
}

// WriteTextFile creates or truncates path and writes the report to it.
func WriteTextFile(r *Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if err := WriteText(r, f); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
