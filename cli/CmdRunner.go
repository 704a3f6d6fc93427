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

// Package cli implements the linkperf console. It parses and executes CLI commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/linkperf/linkperf/linkmodel"
	"github.com/linkperf/linkperf/logger"
	"github.com/linkperf/linkperf/metrics"
	"github.com/linkperf/linkperf/progctx"
	"github.com/linkperf/linkperf/scenario"
)

const (
	Prompt = "> "
)

type CommandContext struct {
	context.Context
	*Command
	rt     *CmdRunner
	err    error
	output io.Writer
}

func (cc *CommandContext) outputf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cc.output, format, args...)
}

func (cc *CommandContext) errorf(format string, args ...interface{}) {
	cc.error(errors.Errorf(format, args...))
}

func (cc *CommandContext) error(err error) {
	if err != nil {
		if cc.err != nil { // if previous error, print it now and keep the last.
			cc.outputf("Error: %s\n", cc.err)
		}
		cc.err = err
	}
}

// Err returns the last error that occurred during command execution.
func (cc *CommandContext) Err() error {
	return cc.err
}

// CmdRunner executes console commands, one at a time.
type CmdRunner struct {
	ctx    *progctx.ProgCtx
	runner *scenario.Runner
	format OutputFormat
	last   *scenario.Result
	help   Help
}

func NewCmdRunner(ctx *progctx.ProgCtx, runner *scenario.Runner) *CmdRunner {
	return &CmdRunner{
		ctx:    ctx,
		runner: runner,
		format: OutputTable,
		help:   newHelp(),
	}
}

// SetOutputFormat sets the format of command results.
func (rt *CmdRunner) SetOutputFormat(format OutputFormat) {
	rt.format = format
}

// HandleCommand parses and executes one command line, writing results and the final
// "Done" or "Error: ..." line to output. It returns a non-nil error once the program exits.
func (rt *CmdRunner) HandleCommand(cmdline string, output io.Writer) error {
	if rt.ctx.Err() == nil {
		cmd := Command{}

		if err := parseBytes([]byte(cmdline), &cmd); err != nil {
			if _, err := fmt.Fprintf(output, "Error: %v\n", err); err != nil {
				return err
			}
		} else {
			rt.execute(&cmd, output)
		}
	}
	return rt.ctx.Err()
}

func (rt *CmdRunner) GetPrompt() string {
	return Prompt
}

func (rt *CmdRunner) execute(cmd *Command, output io.Writer) {
	cc := &CommandContext{
		Context: rt.ctx,
		Command: cmd,
		rt:      rt,
		output:  output,
	}

	defer func() {
		if cc.Err() != nil {
			cc.outputf("Error: %v\n", cc.Err())
		} else {
			cc.outputf("Done\n")
		}
	}()

	defer func() {
		rerr := recover()

		if rerr != nil {
			if err, ok := rerr.(error); ok {
				cc.err = errors.Wrapf(err, "panic")
			} else {
				cc.err = errors.Errorf("panic: %v", rerr)
			}
		}
	}()

	if cmd.Ber != nil {
		rt.executeBer(cc, cmd.Ber)
	} else if cmd.Beamforming != nil {
		rt.executeBeamforming(cc, cmd.Beamforming)
	} else if cmd.Mimo != nil {
		rt.executeMimo(cc, cmd.Mimo)
	} else if cmd.PathLoss != nil {
		rt.executePathLoss(cc, cmd.PathLoss)
	} else if cmd.Slicing != nil {
		rt.executeSlicing(cc, cmd.Slicing)
	} else if cmd.Output != nil {
		rt.executeOutput(cc, cmd.Output)
	} else if cmd.Run != nil {
		rt.executeRun(cc, cmd.Run)
	} else if cmd.Save != nil {
		rt.executeSave(cc, cmd.Save)
	} else if cmd.LogLevel != nil {
		rt.executeLogLevel(cc, cmd.LogLevel)
	} else if cmd.Help != nil {
		rt.executeHelp(cc, cmd.Help)
	} else if cmd.Exit != nil {
		rt.executeExit(cc, cmd.Exit)
	} else {
		logger.Panicf("unimplemented command: %#v", cmd)
	}
}

// runSweep evaluates sw, prints the series and keeps them for 'save'.
func (rt *CmdRunner) runSweep(cc *CommandContext, name string, sw *scenario.Sweep) {
	series, err := rt.runner.RunSweep(sw)
	if err != nil {
		cc.error(err)
		return
	}
	rt.showResult(cc, &scenario.Result{Name: name, Series: series})
}

func (rt *CmdRunner) showResult(cc *CommandContext, res *scenario.Result) {
	rt.last = res
	cc.error(WriteResult(cc.output, res, rt.format))
}

// sweepSpan returns the span for a [from to] range argument and an optional step. Without a
// range the default range is stepped.
func sweepSpan(r *RangeArgs, step *float64, defaultRange []float64) *scenario.Span {
	if r == nil && step == nil {
		return nil
	}
	logger.AssertTrue(len(defaultRange) > 0, "sweep without a default range")
	span := &scenario.Span{From: defaultRange[0], To: defaultRange[len(defaultRange)-1], Step: 1}
	if r != nil {
		span.From, span.To = r.From.Float(), r.To.Float()
	}
	if step != nil {
		span.Step = *step
	}
	return span
}

func (rt *CmdRunner) executeBer(cc *CommandContext, cmd *BerCmd) {
	var step *float64
	if cmd.Step != nil {
		v := cmd.Step.Float()
		step = &v
	}
	rt.runSweep(cc, "ber", &scenario.Sweep{
		Model:      metrics.ModelBer,
		Modulation: cmd.Modulation,
		SnrDb:      sweepSpan(cmd.Snr, step, linkmodel.DefaultBerSnrRangeDb),
	})
}

func (rt *CmdRunner) executeBeamforming(cc *CommandContext, cmd *BeamformingCmd) {
	sw := &scenario.Sweep{
		Model:        metrics.ModelBeamforming,
		Architecture: cmd.Architecture,
		Antennas:     cmd.Antennas,
		Users:        cmd.Users,
	}
	if cmd.Snr != nil {
		sw.SnrDb = scenario.SingleSpan(cmd.Snr.Float())
	}
	rt.runSweep(cc, "beamforming", sw)
}

func (rt *CmdRunner) executeMimo(cc *CommandContext, cmd *MimoCmd) {
	rt.runSweep(cc, "mimo", &scenario.Sweep{
		Model:          metrics.ModelMimo,
		Users:          cmd.Users,
		AntennaOptions: cmd.Antennas,
	})
}

func (rt *CmdRunner) executePathLoss(cc *CommandContext, cmd *PathLossCmd) {
	rt.runSweep(cc, "pathloss", &scenario.Sweep{
		Model:         metrics.ModelPathLoss,
		Environment:   cmd.Environment,
		FrequencyMHz:  cmd.Freq,
		BsHeightM:     cmd.BsHeight,
		MobileHeightM: cmd.MsHeight,
		DistanceKm:    sweepSpan(cmd.Dist, cmd.Step, linkmodel.DefaultDistancesKm),
	})
}

func (rt *CmdRunner) executeSlicing(cc *CommandContext, cmd *SlicingCmd) {
	rt.runSweep(cc, "slicing", &scenario.Sweep{
		Model:   metrics.ModelSlicing,
		Service: cmd.Service,
		Users:   cmd.Users,
		Load:    cmd.Load,
	})
}

func (rt *CmdRunner) executeOutput(cc *CommandContext, cmd *OutputCmd) {
	if cmd.Format == "" {
		cc.outputf("%v\n", rt.format)
		return
	}
	format, err := ParseOutputFormat(cmd.Format)
	if err != nil {
		cc.error(err)
		return
	}
	rt.format = format
}

func (rt *CmdRunner) executeRun(cc *CommandContext, cmd *RunCmd) {
	sc, err := scenario.Load(cmd.File)
	if err != nil {
		cc.error(err)
		return
	}
	res, err := rt.runner.Run(rt.ctx, sc)
	if err != nil {
		cc.error(err)
		return
	}
	rt.showResult(cc, res)
	if cmd.Save != nil {
		cc.error(scenario.Save(res, *cmd.Save))
	}
}

func (rt *CmdRunner) executeSave(cc *CommandContext, cmd *SaveCmd) {
	if rt.last == nil {
		cc.errorf("no results to save")
		return
	}
	cc.error(scenario.Save(rt.last, cmd.File))
}

func (rt *CmdRunner) executeLogLevel(cc *CommandContext, cmd *LogLevelCmd) {
	if cmd.Level == "" {
		cc.outputf("%v\n", logger.GetLevel())
		return
	}
	lv, err := logger.ParseLevelString(cmd.Level)
	if err != nil {
		cc.error(err)
		return
	}
	logger.SetLevel(lv)
}

func (rt *CmdRunner) executeHelp(cc *CommandContext, cmd *HelpCmd) {
	if len(cmd.HelpTopic) == 0 {
		cc.outputf("%s", rt.help.outputGeneralHelp())
	} else {
		cc.outputf("%s", rt.help.outputCommandHelp(cmd.HelpTopic))
	}
}

func (rt *CmdRunner) executeExit(cc *CommandContext, cmd *ExitCmd) {
	rt.ctx.Cancel("exit")
}
