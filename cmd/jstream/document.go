package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/jsonstream/script"
)

var diagOut io.Writer = os.Stderr

// diagColor returns c, colored only when diagnostics go to a terminal.
func diagColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	f, ok := diagOut.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// document writes the document of s to w, followed by a newline, and
// reports structural errors to diagOut as they are recorded.
func (cfg *MainConfig) document(ctx context.Context, w io.Writer, s *script.Script, env script.Env, stop bool) (*script.Report, error) {
	r := script.New(w, cfg.bufSize(), cfg.writerOpts(w, s)...)
	r.Vars = env
	r.StopOnError = stop
	if cfg.Verbose {
		r.Logger = theLog
	}
	rep, err := r.Run(ctx, s)
	red := diagColor(color.FgRed)
	for _, d := range rep.Diagnostics {
		red.Fprintf(diagOut, "Got error: %s\n", d.Msg)
	}
	if err != nil {
		return rep, err
	}
	if err := r.Writer.Flush(); err != nil {
		return rep, err
	}
	if rep.Bytes > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return rep, fmt.Errorf("error writing: %w", err)
		}
	}
	theLog.Debug("document", "steps", rep.Steps, "bytes", rep.Bytes, "complete", rep.Complete)
	return rep, nil
}
