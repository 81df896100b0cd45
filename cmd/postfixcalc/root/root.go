// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"helm.sh/helm/v3/pkg/strvals"

	"github.com/ajkaijanaho/postfixcalc/internal/calc"
	"github.com/ajkaijanaho/postfixcalc/internal/config"
	"github.com/ajkaijanaho/postfixcalc/internal/observability/logging"
	"github.com/ajkaijanaho/postfixcalc/internal/printer"
	"github.com/ajkaijanaho/postfixcalc/internal/source"
	"github.com/ajkaijanaho/postfixcalc/internal/stack"
	"github.com/ajkaijanaho/postfixcalc/internal/util"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const help = `
Reads lines of postfix arithmetic and prints the resulting stack, top first, after each line.
Numbers are non-negative integers. The operators are + - * and /. A number is only pushed
when followed by a space, tab or operator.

Examples:

# Evaluate an expression
echo '3 4 + ' | postfixcalc --quiet

# Push a trailing number at the end of each line
postfixcalc --set=calc.flushAtEndOfLine=true

# Use plain input without line editing, limiting the stack to 1024 values
postfixcalc --source=plain --set=calc.maxStackDepth=1024`

type LogLevelFlag string

func (ll *LogLevelFlag) Decode(ctx *kong.DecodeContext) error {
	var loglevel LogLevelFlag
	if err := ctx.Scan.PopValueInto("log-level", &loglevel); err != nil {
		return err
	}

	*ll = LogLevelFlag(strings.ToLower(string(loglevel)))
	return nil
}

type Cli struct {
	Config   string            `help:"Path to config file" optional:"" type:"path" placeholder:".postfixcalc.yaml" env:"POSTFIXCALC_CONFIG"`
	Set      []string          `help:"Config overrides" placeholder:"calc.flushAtEndOfLine=true"`
	LogLevel LogLevelFlag      `help:"Log level (${enum})" default:"warn" enum:"debug,info,warn,error"`
	Source   string            `help:"Input source: auto, liner or plain. Overrides source.kind" placeholder:"auto"`
	History  string            `help:"Path to history file. Overrides source.history.file" type:"path"`
	Quiet    bool              `help:"Do not print a prompt" short:"q"`
	Color    printer.ColorMode `help:"Colorize output (${enum})" default:"auto" enum:"auto,always,never"`
	Version  kong.VersionFlag  `help:"Show version and exit"`
}

func (c *Cli) Help() string {
	return help
}

// Main runs the calculator against the process streams and returns the exit code.
func Main() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli Cli

	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name(util.AppName),
		kong.Description("Interactive postfix calculator"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Vars{"version": util.AppVersion()},
	)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to initialize: %v\n", util.AppName, err)
		return ExitFailure
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}

	if err != nil {
		parser.Errorf("%s", err)
		return ExitUsage
	}

	return cli.Run(stdin, stdout, stderr)
}

func (c *Cli) Run(stdin io.Reader, stdout, stderr io.Writer) int {
	logging.InitLogging(string(c.LogLevel), stderr)
	defer zap.L().Sync() //nolint:errcheck

	log := zap.L().Named("root")
	p := printer.New(stdout, stderr, c.Color.Enabled(stdout))

	calcConf, srcConf, err := c.loadConfig()
	if err != nil {
		log.Debug("Failed to load configuration", zap.Error(err))
		p.PrintErr("Failed to load configuration", err)
		return ExitUsage
	}

	src, err := source.Open(srcConf, source.Std{In: stdin, Out: stdout}, afero.NewOsFs())
	if err != nil {
		p.PrintErr("Failed to open input", err)
		return ExitUsage
	}

	defer func() {
		if err := src.Close(); err != nil {
			log.Warn("Failed to persist history", zap.Error(err))
		}
	}()

	session := calc.NewSession(src, p, calc.WithConf(calcConf))
	if err := session.Run(context.Background()); err != nil {
		if errors.Is(err, stack.ErrExhausted) {
			log.Error("Stack storage exhausted", zap.Error(err))
			p.PrintErr("Stack storage exhausted.", nil)
			return ExitFailure
		}

		p.PrintErr("Failed to read input", err)
		return ExitFailure
	}

	stats := session.Stats()
	log.Debug("Session finished", zap.Int("lines", stats.Lines), zap.Int("underflows", stats.Underflows))

	return ExitOK
}

func (c *Cli) loadConfig() (*calc.Conf, *source.Conf, error) {
	confOverrides := map[string]any{}
	for _, override := range c.Set {
		if err := strvals.ParseInto(override, confOverrides); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config override [%s]: %w", override, err)
		}
	}

	conf, err := config.Load(c.Config, confOverrides)
	if err != nil {
		return nil, nil, err
	}

	calcConf := &calc.Conf{}
	srcConf := &source.Conf{}
	if err := conf.GetSections(calcConf, srcConf); err != nil {
		return nil, nil, err
	}

	if c.Source != "" {
		srcConf.Kind = source.Kind(c.Source)
	}

	if c.History != "" {
		srcConf.History.File = c.History
	}

	if c.Quiet {
		srcConf.Prompt = ""
	}

	if err := srcConf.Validate(); err != nil {
		return nil, nil, err
	}

	return calcConf, srcConf, nil
}
