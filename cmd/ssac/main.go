// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ComedicChimera/olive"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"ssac/internal/config"
)

// logLevels maps --loglevel values to commonlog verbosity
var logLevels = map[string]int{
	"silent": -4,
	"error":  -2,
	"warn":   -1,
	"info":   1,
	"debug":  2,
}

var emitKinds = []string{emitIR, emitRaw, emitAST, emitLLVM}

func main() {
	cli := olive.NewCLI("ssac", "ssac compiles straight-line programs to optimized SSA form", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "info", "debug"})

	buildCmd := cli.AddSubcommand("build", "compile a source file or a directory of source files", true)
	buildCmd.AddPrimaryArg("path", "the file or directory to compile", true)
	buildCmd.AddSelectorArg("emit", "e", "the representation to print", false, emitKinds).SetDefaultValue(emitIR)
	buildCmd.AddStringArg("config", "c", "the config file to use instead of the nearest ssac.toml", false)
	buildCmd.AddFlag("stats", "s", "print optimization pass statistics")

	watchCmd := cli.AddSubcommand("watch", "recompile whenever a source file changes", true)
	watchCmd.AddPrimaryArg("path", "the file or directory to watch", true)
	watchCmd.AddSelectorArg("emit", "e", "the representation to print", false, emitKinds).SetDefaultValue(emitIR)
	watchCmd.AddStringArg("config", "c", "the config file to use instead of the nearest ssac.toml", false)

	cli.AddSubcommand("version", "print the ssac version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		color.Red("CLI usage error: %s", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build", "watch":
		opts, err := parseBuildOptions(subResult)
		if err != nil {
			color.Red("CLI usage error: %s", err)
			os.Exit(2)
		}

		cfg, err := loadConfig(opts)
		if err != nil {
			color.Red("Configuration error: %s", err)
			os.Exit(1)
		}
		configureLogging(cfg, result.Arguments)

		if subcmdName == "watch" {
			err = runWatch(ctx, opts, cfg, os.Stdout, os.Stderr)
		} else if !build(ctx, opts, cfg, os.Stdout, os.Stderr) {
			os.Exit(1)
		}
		if err != nil && ctx.Err() == nil {
			color.Red("Watch failed: %s", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("ssac %s\n", config.ToolVersion)
	}
}

func parseBuildOptions(result *olive.ArgParseResult) (buildOptions, error) {
	path, ok := result.PrimaryArg()
	if !ok {
		return buildOptions{}, fmt.Errorf("missing path")
	}

	opts := buildOptions{
		Path:  path,
		Emit:  emitIR,
		Stats: result.HasFlag("stats"),
	}
	if value, ok := result.Arguments["emit"]; ok {
		opts.Emit = value.(string)
	}
	if value, ok := result.Arguments["config"]; ok {
		opts.ConfigPath = value.(string)
	}
	return opts, nil
}

// configureLogging applies the config verbosity unless --loglevel overrides it
func configureLogging(cfg *config.Config, arguments map[string]interface{}) {
	verbosity := cfg.Verbosity
	if value, ok := arguments["loglevel"]; ok {
		verbosity = logLevels[value.(string)]
	}
	commonlog.Configure(verbosity, nil)
}
