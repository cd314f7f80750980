package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/little-english/internal/compiler"
	"github.com/DjordjeVuckovic/little-english/internal/reader"
	"github.com/DjordjeVuckovic/little-english/internal/report"
	"github.com/DjordjeVuckovic/little-english/internal/storage"
	"github.com/DjordjeVuckovic/little-english/internal/storage/factory"
	"github.com/DjordjeVuckovic/little-english/pkg/config/env"
)

const (
	exitOK   = 0
	exitFail = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) (code int) {
	defer func() {
		if v := recover(); v != nil {
			fmt.Fprintf(stdout, "Error inesperado: %v\n", v)
			code = exitFail
		}
	}()

	cfg, ok := parseArgs(args, stdout)
	if !ok {
		return exitFail
	}

	fc, err := cfg.resolve()
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitFail
	}
	level, _ := parseLevel(fc.LogLevel)
	slog.SetLogLoggerLevel(level)

	if err := env.LoadDotEnv("cmd/lec/.env", false); err != nil {
		slog.Warn("Failed to load .env", "error", err)
	}

	fmt.Fprintf(stdout, "Iniciando compilación de '%s'...\n", cfg.InputPath)

	result, err := compiler.New().CompileFile(cfg.InputPath)
	if err != nil {
		return reportFault(stdout, err)
	}

	r := report.Generate(result)
	if err := report.WriteTextFile(r, cfg.OutputPath); err != nil {
		return reportFault(stdout, err)
	}
	if fc.JSONReport != "" {
		if err := report.WriteJSON(r, fc.JSONReport); err != nil {
			return reportFault(stdout, err)
		}
	}

	fmt.Fprintf(stdout, "Compilación completada. Resultados guardados en '%s'\n", cfg.OutputPath)
	fmt.Fprintf(stdout, "\nEstadísticas: %d/%d oraciones compiladas exitosamente\n",
		r.Summary.Successful, r.Summary.Total)

	persist(context.Background(), fc.Storage, result)

	return exitOK
}

func parseArgs(args []string, stdout io.Writer) (cliConfig, bool) {
	var cfg cliConfig

	fs := flag.NewFlagSet("lec", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { printUsage(stdout) }
	fs.StringVar(&cfg.ConfigPath, "config", "", "Path to YAML configuration file")
	fs.StringVar(&cfg.JSONPath, "json", "", "Also write the report as JSON to this path")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn or error")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return cfg, false
	}
	if len(positional) != 2 {
		printUsage(stdout)
		return cfg, false
	}

	cfg.InputPath = positional[0]
	cfg.OutputPath = positional[1]
	return cfg, true
}

// parseInterspersed accepts flags before, between and after positional
// arguments. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		consumed := len(rest) - fs.NArg()
		if consumed > 0 && rest[consumed-1] == "--" {
			return append(positional, fs.Args()...), nil
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Uso: lec <archivo_entrada> <archivo_salida>")
	fmt.Fprintln(w, "Ejemplo: lec oraciones.txt resultados.txt")
}

func reportFault(w io.Writer, err error) int {
	if errors.Is(err, reader.ErrInputNotFound) {
		fmt.Fprintf(w, "Error: %v\n", err)
	} else {
		fmt.Fprintf(w, "Error de E/O: %v\n", err)
	}
	return exitFail
}

// persist stores the run when a backend is configured. Failures are only logged.
func persist(ctx context.Context, defaultType storage.Type, run *compiler.Run) {
	storageCfg, err := factory.LoadEnv(defaultType)
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		return
	}
	if storageCfg.Type == storage.None {
		return
	}

	st, err := factory.NewRunStorer(ctx, *storageCfg)
	if err != nil {
		slog.Error("Failed to create run storer", "type", storageCfg.Type, "error", err)
		return
	}
	defer st.Close()

	if err := st.Storer.SaveRun(ctx, run); err != nil {
		slog.Error("Failed to persist run", "id", run.ID, "error", err)
		return
	}
	slog.Info("Run persisted", "id", run.ID, "type", storageCfg.Type)
}
