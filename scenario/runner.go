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

package scenario

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/linkperf/linkperf/linkmodel"
	"github.com/linkperf/linkperf/logger"
	"github.com/linkperf/linkperf/metrics"
	. "github.com/linkperf/linkperf/types"
)

// Runner evaluates sweeps and records each evaluation in its metrics collector.
type Runner struct {
	metrics *metrics.Collector

	// OnSweepDone, if set, is called after each sweep of Run with the number of sweeps done so far.
	OnSweepDone func(done int, total int)
}

// NewRunner creates a Runner. The collector may be nil.
func NewRunner(collector *metrics.Collector) *Runner {
	return &Runner{
		metrics: collector,
	}
}

// Run evaluates all sweeps of sc in order. It stops at the first failing sweep, or when ctx is done.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	start := time.Now()
	res := &Result{
		Name: sc.Name,
	}
	for i := range sc.Sweeps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		series, err := r.RunSweep(&sc.Sweeps[i])
		if err != nil {
			r.metrics.Observe(metrics.ModelScenario, 0, time.Since(start), err)
			return nil, errors.Wrapf(err, "sweep %d (%s)", i+1, sc.Sweeps[i].Model)
		}
		res.Series = append(res.Series, series...)
		if r.OnSweepDone != nil {
			r.OnSweepDone(i+1, len(sc.Sweeps))
		}
	}

	points := 0
	for _, s := range res.Series {
		points += s.Len()
	}
	r.metrics.Observe(metrics.ModelScenario, points, time.Since(start), nil)
	logger.Event(logger.InfoLevel, "scenario done", zap.String("name", sc.Name),
		zap.Int("sweeps", len(sc.Sweeps)), zap.Int("series", len(res.Series)), zap.Int("points", points))
	return res, nil
}

// RunSweep evaluates a single sweep and returns its series.
func (r *Runner) RunSweep(sw *Sweep) ([]MetricSeries, error) {
	start := time.Now()
	series, err := evaluate(sw)
	elapsed := time.Since(start)

	model := sw.Model
	if !isKnownModel(model) {
		model = "unknown"
	}
	points := 0
	for _, s := range series {
		points += s.Len()
	}
	r.metrics.Observe(model, points, elapsed, err)

	if err != nil {
		logger.Event(logger.DebugLevel, "sweep rejected", zap.String("model", model), zap.Error(err))
		return nil, err
	}
	logger.AssertTrue(points > 0, "%s sweep evaluated to no points", model)
	logger.Event(logger.DebugLevel, "sweep evaluated", zap.String("model", model),
		zap.Int("points", points), zap.Duration("elapsed", elapsed))
	return series, nil
}

func isKnownModel(model string) bool {
	switch model {
	case metrics.ModelBer, metrics.ModelBeamforming, metrics.ModelMimo, metrics.ModelPathLoss, metrics.ModelSlicing:
		return true
	default:
		return false
	}
}

func evaluate(sw *Sweep) ([]MetricSeries, error) {
	switch sw.Model {
	case metrics.ModelBer:
		return evaluateBer(sw)
	case metrics.ModelBeamforming:
		return evaluateBeamforming(sw)
	case metrics.ModelMimo:
		return evaluateMimo(sw)
	case metrics.ModelPathLoss:
		return evaluatePathLoss(sw)
	case metrics.ModelSlicing:
		return evaluateSlicing(sw)
	default:
		return nil, errors.Errorf("unknown model: %q", sw.Model)
	}
}

func evaluateBer(sw *Sweep) ([]MetricSeries, error) {
	mod := linkmodel.DefaultModulation
	if sw.Modulation != "" {
		var err error
		if mod, err = ParseModulation(sw.Modulation); err != nil {
			return nil, err
		}
	}

	snrRange := linkmodel.DefaultBerSnrRangeDb
	if sw.SnrDb != nil {
		var err error
		if snrRange, err = sw.SnrDb.Values(); err != nil {
			return nil, err
		}
	}

	ms, err := linkmodel.ComputeBerSeries(mod, snrRange)
	if err != nil {
		return nil, err
	}
	return []MetricSeries{ms}, nil
}

func evaluateBeamforming(sw *Sweep) ([]MetricSeries, error) {
	arch := linkmodel.DefaultArchitecture
	if sw.Architecture != "" {
		var err error
		if arch, err = ParseArchitecture(sw.Architecture); err != nil {
			return nil, err
		}
	}

	snrDb := DbValue(linkmodel.DefaultBeamformingSnrDb)
	if sw.SnrDb != nil {
		if !sw.SnrDb.IsSingle() {
			return nil, errors.New("beamforming takes a single snr-db value")
		}
		snrDb = sw.SnrDb.From
	}

	ms, err := linkmodel.ComputeBeamformingSeries(arch,
		intOr(sw.Antennas, linkmodel.DefaultMaxAntennas),
		intOr(sw.Users, linkmodel.DefaultBeamformingUsers),
		snrDb)
	if err != nil {
		return nil, err
	}
	return []MetricSeries{ms}, nil
}

func evaluateMimo(sw *Sweep) ([]MetricSeries, error) {
	options := linkmodel.DefaultMimoAntennaOptions
	if len(sw.AntennaOptions) > 0 {
		options = sw.AntennaOptions
	}

	res, err := linkmodel.ComputeMimoSeries(options, intOr(sw.Users, linkmodel.DefaultMimoUsers))
	if err != nil {
		return nil, err
	}
	return []MetricSeries{res.Spectral, res.Capacity}, nil
}

func evaluatePathLoss(sw *Sweep) ([]MetricSeries, error) {
	env := linkmodel.DefaultEnvironment
	if sw.Environment != "" {
		var err error
		if env, err = ParseEnvironment(sw.Environment); err != nil {
			return nil, err
		}
	}

	distances := linkmodel.DefaultDistancesKm
	if sw.DistanceKm != nil {
		var err error
		if distances, err = sw.DistanceKm.Values(); err != nil {
			return nil, err
		}
	}

	freq := floatOr(sw.FrequencyMHz, linkmodel.DefaultFrequencyMHz)
	ms, err := linkmodel.ComputePathLossSeries(env, freq,
		floatOr(sw.BsHeightM, linkmodel.DefaultBsHeightM),
		floatOr(sw.MobileHeightM, linkmodel.DefaultMobileHeightM),
		distances)
	if err != nil {
		return nil, err
	}
	if env == Urban && (!linkmodel.HataValidRange(freq, distances[0]) || !linkmodel.HataValidRange(freq, distances[len(distances)-1])) {
		logger.Warnf("path loss at %v MHz over %v-%v km is outside the Okumura-Hata range (150-1500 MHz, 1-20 km)",
			freq, distances[0], distances[len(distances)-1])
	}
	return []MetricSeries{ms}, nil
}

func evaluateSlicing(sw *Sweep) ([]MetricSeries, error) {
	svc := linkmodel.DefaultServiceType
	if sw.Service != "" {
		var err error
		if svc, err = ParseServiceType(sw.Service); err != nil {
			return nil, err
		}
	}

	res, err := linkmodel.ComputeSlicingSeries(svc,
		intOr(sw.Users, linkmodel.DefaultSliceUsers),
		floatOr(sw.Load, linkmodel.DefaultSliceBaseLoad))
	if err != nil {
		return nil, err
	}
	return []MetricSeries{res.Throughput, res.Latency}, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
