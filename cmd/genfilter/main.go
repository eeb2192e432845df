// Command genfilter writes the unrolled filter kernel used by
// internal/filter: a generic function with one switch arm per 8-bit
// selection mask. With no arguments the source goes to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/23skdu/colfilter/internal/codegen"
	"github.com/23skdu/colfilter/internal/logging"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(stderr, "genfilter: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("genfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Output, "o", cfg.Output, "write to `file` instead of standard output")
	fs.StringVar(&cfg.Package, "package", cfg.Package, "package clause of the generated file")
	fs.StringVar(&cfg.FuncName, "func", cfg.FuncName, "name of the generated function")
	fs.StringVar(&cfg.Base, "base", cfg.Base, "case label literals: hex or decimal")
	fs.BoolVar(&cfg.Gofmt, "gofmt", cfg.Gofmt, "format the output with gofmt")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json or console")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "genfilter: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}

	if err := ValidateConfig(&cfg); err != nil {
		fmt.Fprintf(stderr, "genfilter: invalid configuration: %v\n", err)
		return 1
	}

	logger, err := logging.NewLogger(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "genfilter: %v\n", err)
		return 1
	}

	if err := generate(&cfg, stdout, logger); err != nil {
		logger.Error().Err(err).Str("output", cfg.Output).Msg("generation failed")
		return 1
	}
	return 0
}

func generate(cfg *Config, stdout io.Writer, logger zerolog.Logger) error {
	opts := cfg.Options()
	src, err := codegen.Source(opts)
	if err != nil {
		return err
	}

	dest := "stdout"
	if cfg.Output == "" {
		if _, err := stdout.Write(src); err != nil {
			return err
		}
	} else {
		dest = cfg.Output
		if err := writeFileAtomic(cfg.Output, src); err != nil {
			return err
		}
	}

	logger.Info().
		Str("output", dest).
		Str("package", opts.Package).
		Str("func", opts.FuncName).
		Str("base", string(opts.Base)).
		Int("cases", codegen.NumMasks).
		Int("bytes", len(src)).
		Msg("generated case table")
	return nil
}

// writeFileAtomic replaces path with data so a failed run never leaves a
// truncated kernel behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
