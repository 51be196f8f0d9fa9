package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/gocalc"
	"github.com/spf13/pflag"
)

type config struct {
	base     string
	allBases bool
	strict   bool
	checked  bool
	dump     bool
	logLevel string
	noColor  bool
	exprs    []string
}

func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.base, "base", "b", "dec", "Output base: dec, bin, oct or hex")
	fs.BoolVarP(&c.allBases, "all-bases", "a", false, "Print the result in every base")
	fs.BoolVar(&c.strict, "strict", false, "Reject unrecognized characters instead of ignoring them")
	fs.BoolVar(&c.checked, "checked", false, "Report integer overflow instead of wrapping")
	fs.BoolVar(&c.dump, "dump", false, "Dump tokens and expression tree before each result")
	fs.StringVar(&c.logLevel, "log-level", "warn", "Log level: debug, info, warn, error or none")
	fs.BoolVar(&c.noColor, "no-color", false, "Disable colored output")
	fs.StringArrayVarP(&c.exprs, "expr", "e", nil, "Expression to evaluate (repeatable)")
}

func parseLevel(s string) (slog.Level, bool, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	case "none":
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("unknown log level: %q", s)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, enabled, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if !enabled {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (c *config) calculator() *gocalc.Calculator {
	return &gocalc.Calculator{
		Strict:  c.strict,
		Checked: c.checked,
	}
}
