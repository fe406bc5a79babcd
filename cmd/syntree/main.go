package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/g-m-twostay/syntree/Dicts"
	"github.com/g-m-twostay/syntree/Dicts/SynDict"
	"github.com/g-m-twostay/syntree/Session"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "syntree",
		Usage:     "load words with their synonyms into a balanced tree and answer lookups",
		UsageText: "syntree [options] <input> <output>   (\"-\" for stdin/stdout)",
		Version:   versioninfo.Short(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "skip-invalid",
				Usage:   "skip load records that break the size limits instead of failing",
				EnvVars: []string{"SYNTREE_SKIP_INVALID"},
			},
			&cli.BoolFlag{
				Name:    "dump-tree",
				Usage:   "print the shape of the tree to stderr after loading",
				EnvVars: []string{"SYNTREE_DUMP_TREE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"SYNTREE_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format (text, json)",
				Value:   "text",
				EnvVars: []string{"SYNTREE_LOG_FORMAT"},
			},
		},
		Action: runSyntree,
	}
	return app
}

func configLogger(cctx *cli.Context) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(cctx.String("log-format")) {
	case "json":
		h = slog.NewJSONHandler(cctx.App.ErrWriter, opts)
	case "text", "":
		h = slog.NewTextHandler(cctx.App.ErrWriter, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %q", cctx.String("log-format"))
	}
	return slog.New(h).With("system", "syntree"), nil
}

func runSyntree(cctx *cli.Context) error {
	logger, err := configLogger(cctx)
	if err != nil {
		fmt.Fprintln(cctx.App.ErrWriter, err)
		return err
	}
	if cctx.NArg() != 2 {
		err := fmt.Errorf("expected 2 arguments, got %d", cctx.NArg())
		logger.Error("usage: "+cctx.App.UsageText, "err", err)
		return err
	}
	inPath, outPath := cctx.Args().Get(0), cctx.Args().Get(1)

	in := cctx.App.Reader
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			logger.Error("opening input", "path", inPath, "err", err)
			return err
		}
		defer f.Close()
		in = f
	}
	out := cctx.App.Writer
	var outFile *os.File
	if outPath != "-" {
		outFile, err = os.Create(outPath)
		if err != nil {
			logger.Error("creating output", "path", outPath, "err", err)
			return err
		}
		defer outFile.Close()
		out = outFile
	}

	dict := SynDict.New()
	defer dict.Clear()
	opts := Session.Options{Logger: logger, SkipInvalid: cctx.Bool("skip-invalid")}
	if cctx.Bool("dump-tree") {
		opts.AfterLoad = func(Dicts.Dictionary) {
			fmt.Fprint(cctx.App.ErrWriter, dict.Dump())
		}
	}
	s := Session.New(dict, Session.NewTextRenderer(out), opts)

	st, err := s.Run(in)
	if err != nil {
		logger.Error("session failed", "input", inPath, "queries", st.Queries, "err", err)
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			logger.Error("closing output", "path", outPath, "err", err)
			return err
		}
	}
	return nil
}
