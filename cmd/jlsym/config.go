package main

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	symbolsFileKey = "symbols-file"
	lookupKey      = "lookup"
	descendingKey  = "descending"
	logLevelKey    = "log-level"
	versionKey     = "version"

	envPrefix = "jlsym"
)

var errSymbolsFileRequired = errors.New("--" + symbolsFileKey + " is required")

type config struct {
	SymbolsFile string
	Lookups     []string
	Descending  bool
	LogLevel    zapcore.Level
	Version     bool
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("jlsym", pflag.ContinueOnError)
	fs.String(symbolsFileKey, "", "YAML file of symbols to load")
	fs.StringSlice(lookupKey, nil, "Lexemes to look up. If empty, the whole table is printed")
	fs.Bool(descendingKey, false, "If true, orders the table from greatest to least lexeme")
	fs.String(logLevelKey, "info", "Log level: debug, info, warn or error")
	fs.Bool(versionKey, false, "If true, prints Version and quit")
	return fs
}

// getViper returns the viper environment for args, with JLSYM_ environment variables overriding
// unset flags.
func getViper(args []string) (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return v, nil
}

func getConfig(v *viper.Viper) (config, error) {
	level, err := zapcore.ParseLevel(v.GetString(logLevelKey))
	if err != nil {
		return config{}, err
	}
	cfg := config{
		SymbolsFile: v.GetString(symbolsFileKey),
		Lookups:     v.GetStringSlice(lookupKey),
		Descending:  v.GetBool(descendingKey),
		LogLevel:    level,
		Version:     v.GetBool(versionKey),
	}
	if !cfg.Version && cfg.SymbolsFile == "" {
		return config{}, errSymbolsFileRequired
	}
	return cfg, nil
}
