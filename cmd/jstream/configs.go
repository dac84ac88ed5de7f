package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonstream/sanitize"
	"github.com/signadot/jsonstream/script"
	"github.com/signadot/jsonstream/stream"
)

type MainConfig struct {
	Pretty   bool   `cli:"name=pretty aliases=p desc='one token per line, indented'"`
	Indent   string `cli:"name=indent desc='indentation unit with -pretty'"`
	Buffered bool   `cli:"name=buffered aliases=b desc='write through a bounded buffer drained after each call'"`
	BufSize  int    `cli:"name=bufsize desc='buffer capacity with -buffered'"`
	Escape   bool   `cli:"name=escape desc='escape names and string values'"`
	HTML     bool   `cli:"name=html desc='escape names and string values for html'"`
	Salt     string `cli:"name=salt desc='salt for -redact hashes'"`
	Color    bool   `cli:"name=color desc='color output'"`
	Verbose  bool   `cli:"name=v desc='log each step'"`

	Secrets []string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}

type RunConfig struct {
	*MainConfig
	Env    script.Env
	Expect string `cli:"name=expect desc='compare the document with this JSON file'"`
	Stop   bool   `cli:"name=stop desc='stop at the first structural error'"`

	Run *cli.Command
}

func (cfg *MainConfig) redactOpt(_ *cli.Context, a string) (any, error) {
	cfg.Secrets = append(cfg.Secrets, a)
	return nil, nil
}

// optSet reports whether the main option name was given.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) bufSize() int {
	if !cfg.Buffered {
		return 0
	}
	if cfg.BufSize > 0 {
		return cfg.BufSize
	}
	return stream.DefaultBufferSize
}

func (cfg *MainConfig) transform() stream.Transform {
	var ts []stream.Transform
	if len(cfg.Secrets) > 0 {
		ts = append(ts, sanitize.Redact(cfg.Secrets, cfg.Salt))
	}
	switch {
	case cfg.HTML:
		ts = append(ts, sanitize.EscapeHTML)
	case cfg.Escape:
		ts = append(ts, sanitize.Escape)
	}
	if len(ts) == 0 {
		return nil
	}
	return sanitize.Chain(ts...)
}

// writerOpts merges the script's options with the command line, which
// wins when given.
func (cfg *MainConfig) writerOpts(w io.Writer, s *script.Script) []stream.Option {
	res := s.Options()
	if cfg.Pretty || cfg.optSet("pretty") {
		res = append(res, stream.WithPretty(cfg.Pretty))
	}
	if cfg.Indent != "" {
		res = append(res, stream.WithIndent(cfg.Indent))
	}
	if t := cfg.transform(); t != nil {
		res = append(res, stream.WithTransform(t))
	}
	if cfg.colors(w) {
		res = append(res, stream.WithColors(stream.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	if cfg.optSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
