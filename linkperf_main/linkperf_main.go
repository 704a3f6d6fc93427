// Copyright (c) 2024, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package linkperf_main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/simonlingoogle/go-simplelogger"
	"golang.org/x/term"

	"github.com/linkperf/linkperf/cli"
	"github.com/linkperf/linkperf/logger"
	"github.com/linkperf/linkperf/metrics"
	"github.com/linkperf/linkperf/progctx"
	"github.com/linkperf/linkperf/scenario"
)

type MainArgs struct {
	LogLevel    string
	Output      string
	MetricsAddr string
	Script      string
	Save        string
}

func parseArgs(argv []string) (*MainArgs, error) {
	args := &MainArgs{}
	fs := flag.NewFlagSet("linkperf", flag.ContinueOnError)
	fs.StringVar(&args.LogLevel, "log", "warn", "set logging level: trace, debug, info, warn, error, off.")
	fs.StringVar(&args.Output, "output", "table", "set result output format: table, yaml, json, csv.")
	fs.StringVar(&args.MetricsAddr, "metrics", "", "serve Prometheus metrics on this address, e.g. localhost:9100 (empty: disabled)")
	fs.StringVar(&args.Script, "script", "", "run the given scenario file non-interactively and exit")
	fs.StringVar(&args.Save, "save", "", "with -script, also save the result to this file (.yaml, .json or .csv)")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	if args.Save != "" && args.Script == "" {
		return nil, errors.New("-save requires -script")
	}
	return args, nil
}

// Main runs linkperf with the command-line arguments argv: a scenario script if -script is given,
// the interactive console otherwise. It returns when ctx is cancelled or the work is done.
func Main(ctx *progctx.ProgCtx, argv []string, cliOptions *cli.CliOptions) error {
	args, err := parseArgs(argv)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevelString(args.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	simplelogger.SetLevel(simpleLevel(level))

	format, err := cli.ParseOutputFormat(args.Output)
	if err != nil {
		return err
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		return err
	}
	runner := scenario.NewRunner(collector)

	handleSignals(ctx)
	ctx.Defer(func() {
		_ = os.Stdin.Close()
	})

	if args.MetricsAddr != "" {
		ctx.Go("metrics", func() {
			if err := collector.Serve(ctx, args.MetricsAddr); err != nil {
				ctx.Cancel(err)
			}
		})
		logger.Infof("serving metrics on http://%s/metrics", args.MetricsAddr)
	}

	if args.Script != "" {
		err = runScript(ctx, args, runner, format, os.Stdout)
		ctx.Cancel(err)
		ctx.Wait()
		return err
	}

	rt := cli.NewCmdRunner(ctx, runner)
	rt.SetOutputFormat(format)
	logger.SetStdoutCallback(cli.Cli)
	ctx.Go("cli", func() {
		err := cli.Cli.Run(rt, cliOptions)
		ctx.Cancel(errors.Wrapf(err, "console exit"))
	})

	ctx.Wait()
	if ctx.IsExit() {
		return nil
	}
	return ctx.Cause()
}

func runScript(ctx *progctx.ProgCtx, args *MainArgs, runner *scenario.Runner, format cli.OutputFormat, stdout io.Writer) error {
	sc, err := scenario.Load(args.Script)
	if err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		runner.OnSweepDone = progress(os.Stderr, len(sc.Sweeps), sc.Name)
	}
	res, err := runner.Run(ctx, sc)
	if err != nil {
		return err
	}

	if err = cli.WriteResult(stdout, res, format); err != nil {
		return err
	}
	if args.Save != "" {
		return scenario.Save(res, args.Save)
	}
	return nil
}

// progress returns a sweep callback drawing a progress bar on w.
func progress(w io.Writer, total int, name string) func(done int, total int) {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowCount(),
	)
	return func(done int, total int) {
		_ = bar.Set(done)
		if done == total {
			_ = bar.Finish()
			_, _ = fmt.Fprintln(w)
		}
	}
}

// simpleLevel maps a log level to the level of the lifecycle logger used by progctx.
func simpleLevel(level logger.Level) simplelogger.Level {
	switch {
	case level >= logger.DebugLevel:
		return simplelogger.DebugLevel
	case level == logger.InfoLevel:
		return simplelogger.InfoLevel
	case level == logger.WarnLevel:
		return simplelogger.WarnLevel
	default:
		return simplelogger.ErrorLevel
	}
}

func handleSignals(ctx *progctx.ProgCtx) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)

	ctx.Go("handleSignals", func() {
		defer signal.Stop(c)
		defer simplelogger.Debugf("handleSignals exit.")

		for {
			select {
			case sig := <-c:
				simplelogger.Infof("signal received: %v", sig)
				ctx.Cancel(nil)
			case <-ctx.Done():
				return
			}
		}
	})
}
