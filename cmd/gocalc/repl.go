package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
	"github.com/sanity-io/litter"
)

var errFailed = errors.New("some expressions failed")

type app struct {
	cfg  *config
	calc *gocalc.Calculator
	base gocalc.Base
	log  *slog.Logger
	out  io.Writer
	errw io.Writer
	red  *color.Color
}

func newApp(cfg *config, out, errw io.Writer) (*app, error) {
	base, err := gocalc.ParseBase(cfg.base)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(errw, cfg.logLevel)
	if err != nil {
		return nil, err
	}
	red := color.New(color.FgRed)
	if cfg.noColor {
		red.DisableColor()
	}
	return &app{
		cfg:  cfg,
		calc: cfg.calculator(),
		base: base,
		log:  logger,
		out:  out,
		errw: errw,
		red:  red,
	}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) format(v gocalc.Value) (string, error) {
	if !a.cfg.allBases {
		return gocalc.FormatValue(v, a.base)
	}
	parts := make([]string, 0, len(gocalc.Bases))
	for _, b := range gocalc.Bases {
		s, err := gocalc.FormatValue(v, b)
		if err != nil {
			return "", err
		}
		parts = append(parts, b.String()+"="+s)
	}
	return strings.Join(parts, " "), nil
}

func (a *app) eval(line string) (string, error) {
	tokens, expr, err := a.calc.Parse(line)
	if a.cfg.dump && tokens != nil {
		fmt.Fprintf(a.out, "tokens: %s\n", litter.Sdump(tokens))
	}
	if err != nil {
		return "", err
	}
	if a.cfg.dump {
		fmt.Fprintf(a.out, "tree: %v\n%s\n", expr, litter.Sdump(expr))
	}
	v, err := a.calc.Evaluate(expr)
	if err != nil {
		return "", err
	}
	if a.log.Enabled(context.Background(), slog.LevelDebug) {
		a.log.Debug("evaluated", "input", line, "tokens", len(tokens), "depth", expr.Depth(), "result", v.String())
	}
	return a.format(v)
}

// evalLine prints the result of line, or the error, and reports whether it
// succeeded.
func (a *app) evalLine(line string) bool {
	s, err := a.eval(line)
	if err != nil {
		a.log.Info("evaluation failed", "input", line, "error", err)
		a.red.Fprintf(a.errw, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(a.out, s)
	return true
}

func (a *app) evalLines(r io.Reader) error {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !a.evalLine(line) {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

func (a *app) repl(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		a.evalLine(line)
	}
	fmt.Fprintln(a.out)
	return scanner.Err()
}

func (a *app) run(in io.Reader, args []string) error {
	if len(a.cfg.exprs) > 0 {
		if len(args) > 0 {
			return errors.New("--expr cannot be combined with a file argument")
		}
		failed := false
		for _, e := range a.cfg.exprs {
			if !a.evalLine(e) {
				failed = true
			}
		}
		if failed {
			return errFailed
		}
		return nil
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		a.log.Info("evaluating file", "path", args[0])
		return a.evalLines(f)
	}

	if isTerminal(in) {
		a.log.Info("starting repl")
		return a.repl(in)
	}
	return a.evalLines(in)
}
