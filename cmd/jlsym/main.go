// jlsym loads a YAML symbol file into a sorted symbol table, then either prints the table or looks
// up the lexemes given with --lookup.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bradenaw/jlist/symtab"
)

const Version = "0.1.0"

var errNotFound = errors.New("lexemes not found")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "jlsym: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	v, err := getViper(args)
	if err != nil {
		return err
	}
	cfg, err := getConfig(v)
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Fprintln(out, Version)
		return nil
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(cfg.SymbolsFile)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := symtab.Load(f, symtab.Config{Descending: cfg.Descending})
	if err != nil {
		log.Error("failed to load symbols",
			zap.String("file", cfg.SymbolsFile),
			zap.Error(err),
		)
		return err
	}
	log.Debug("loaded symbols",
		zap.String("file", cfg.SymbolsFile),
		zap.Int("count", table.Len()),
		zap.Bool("descending", cfg.Descending),
	)

	if len(cfg.Lookups) == 0 {
		return table.Dump(out)
	}

	missing := 0
	for _, lexeme := range cfg.Lookups {
		owner, ok := table.Get(lexeme)
		if !ok {
			log.Warn("lexeme not found", zap.String("lexeme", lexeme))
			missing++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", lexeme, owner)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d %w", missing, len(cfg.Lookups), errNotFound)
	}
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
