package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonstream/script"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "redact",
			Description: "replace a secret in names and values with its salted hash",
			Type:        cli.NamedFuncOpt(cfg.redactOpt, "(secret)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jstream").
		WithSynopsis("jstream [opts] command [opts]").
		WithDescription("jstream writes JSON documents one structural call at a time.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jstreamMain(cfg, cc, args)
		}).
		WithSubs(
			DemoCommand(cfg),
			RunCommand(cfg),
			CheckCommand(cfg))
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("demo").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("demo").
		WithDescription("write the demonstration document").
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
	cfg.Demo = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg, Env: script.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})
	cmd := cli.NewCommand("run").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("run [-e path=val]... [-expect file] [-stop] [scripts]").
		WithDescription("write the documents described by step scripts").
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg, Env: script.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check <expected.json> <script>").
		WithDescription("run a script and compare its document with an expected one").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func envOptTypeFunc(env script.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := env.SetVar(a); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return 0, nil
	}
}
