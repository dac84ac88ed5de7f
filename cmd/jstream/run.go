package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonstream/script"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if cfg.Expect != "" && len(args) != 1 {
		return fmt.Errorf("%w: -expect takes a single script", cli.ErrUsage)
	}
	return cfg.runFiles(cc, args)
}

func check(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires an expected document and a script", cli.ErrUsage)
	}
	cfg.Expect = args[0]
	return cfg.runFiles(cc, args[1:])
}

func (cfg *RunConfig) runFiles(cc *cli.Context, files []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	failed := false
	for _, file := range files {
		s, err := loadScript(cc.In, file)
		if err != nil {
			return err
		}
		if cfg.Expect != "" {
			return cfg.compare(ctx, cc.Out, s)
		}
		rep, err := cfg.document(ctx, cc.Out, s, cfg.Env, cfg.Stop)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		failed = failed || len(rep.Diagnostics) > 0
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func loadScript(in io.Reader, file string) (*script.Script, error) {
	if file != "-" {
		return script.Load(file)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return script.Parse(data)
}

// compare writes the uncolored document of s to w and checks it against
// the expected file, printing a line diff when they differ.
func (cfg *RunConfig) compare(ctx context.Context, w io.Writer, s *script.Script) error {
	expected, err := os.ReadFile(cfg.Expect)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", cfg.Expect, err)
	}
	// the compared document is never colored
	plain := *cfg.MainConfig
	plain.Color = false
	var got bytes.Buffer
	if _, err := plain.document(ctx, &got, s, cfg.Env, cfg.Stop); err != nil {
		return err
	}
	if _, err := w.Write(got.Bytes()); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	if jsonpatch.Equal(expected, got.Bytes()) {
		return nil
	}
	writeDiff(diagOut, strings.TrimSpace(string(expected)), strings.TrimSpace(got.String()))
	return fmt.Errorf("document differs from %s", cfg.Expect)
}
