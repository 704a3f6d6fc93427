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

package linkmodel

import (
	"fmt"

	. "github.com/linkperf/linkperf/types"
)

// MimoSeries holds the two series of a massive-MIMO antenna sweep.
type MimoSeries struct {
	Spectral MetricSeries
	Capacity MetricSeries
}

// SlicingSeries holds the two series of a network slice per-user sweep.
type SlicingSeries struct {
	Throughput MetricSeries
	Latency    MetricSeries
}

// ComputeBeamformingSeries evaluates BeamformingCapacity for antenna counts 1..maxAntennas.
func ComputeBeamformingSeries(arch Architecture, maxAntennas int, users int, snrDb DbValue) (MetricSeries, error) {
	if err := checkCount("maximum antenna count", maxAntennas); err != nil {
		return MetricSeries{}, err
	}
	if maxAntennas > maxSweepPoints {
		return MetricSeries{}, invalidParamf("maximum antenna count %d exceeds %d", maxAntennas, maxSweepPoints)
	}

	ms := MetricSeries{
		Name:   fmt.Sprintf("%s beamforming capacity vs antennas", arch),
		XLabel: "Number of Antennas",
		YLabel: "Capacity (bps)",
		Points: make([]MetricPoint, 0, maxAntennas),
	}
	for n := 1; n <= maxAntennas; n++ {
		c, err := BeamformingCapacity(arch, n, users, snrDb)
		if err != nil {
			return MetricSeries{}, err
		}
		ms.Points = append(ms.Points, MetricPoint{X: float64(n), Y: c})
	}
	return ms, nil
}

// ComputeBerSeries evaluates BerFor at each SNR (dB) of snrDbRange.
func ComputeBerSeries(mod Modulation, snrDbRange []DbValue) (MetricSeries, error) {
	if len(snrDbRange) == 0 {
		return MetricSeries{}, invalidParamf("empty SNR range")
	}

	ms := MetricSeries{
		Name:   fmt.Sprintf("BER for %s", mod),
		XLabel: "SNR (dB)",
		YLabel: "BER",
		Points: make([]MetricPoint, 0, len(snrDbRange)),
	}
	for _, snrDb := range snrDbRange {
		snr := DbToLinear(snrDb)
		if !IsFinite(snrDb) || !IsFinite(snr) {
			return MetricSeries{}, invalidParamf("SNR %v dB is out of range", snrDb)
		}
		ber, err := BerFor(mod, snr)
		if err != nil {
			return MetricSeries{}, err
		}
		ms.Points = append(ms.Points, MetricPoint{X: snrDb, Y: ber})
	}
	return ms, nil
}

// ComputeMimoSeries evaluates MimoPerformance for each antenna count of antennaOptions.
func ComputeMimoSeries(antennaOptions []int, users int) (MimoSeries, error) {
	if len(antennaOptions) == 0 {
		return MimoSeries{}, invalidParamf("empty antenna options")
	}

	res := MimoSeries{
		Spectral: MetricSeries{
			Name:   fmt.Sprintf("Spectral efficiency for %d users", users),
			XLabel: "Number of Antennas",
			YLabel: "Spectral Efficiency (bps/Hz)",
			Points: make([]MetricPoint, 0, len(antennaOptions)),
		},
		Capacity: MetricSeries{
			Name:   fmt.Sprintf("Capacity for %d users", users),
			XLabel: "Number of Antennas",
			YLabel: "Capacity (bps)",
			Points: make([]MetricPoint, 0, len(antennaOptions)),
		},
	}
	for _, n := range antennaOptions {
		perf, err := MimoPerformance(n, users)
		if err != nil {
			return MimoSeries{}, err
		}
		res.Spectral.Points = append(res.Spectral.Points, MetricPoint{X: float64(n), Y: perf.SpectralEfficiency})
		res.Capacity.Points = append(res.Capacity.Points, MetricPoint{X: float64(n), Y: perf.Capacity})
	}
	return res, nil
}

// ComputePathLossSeries evaluates PathLoss at each distance (km) of distances.
func ComputePathLossSeries(env Environment, freqMHz float64, hBsM float64, hMsM float64, distances []float64) (MetricSeries, error) {
	if len(distances) == 0 {
		return MetricSeries{}, invalidParamf("empty distance range")
	}

	ms := MetricSeries{
		Name:   fmt.Sprintf("Path loss (%s)", env),
		XLabel: "Distance (km)",
		YLabel: "Path Loss (dB)",
		Points: make([]MetricPoint, 0, len(distances)),
	}
	p := PropagationParameters{
		FrequencyMHz:  freqMHz,
		BsHeightM:     hBsM,
		MobileHeightM: hMsM,
		Environment:   env,
	}
	for _, d := range distances {
		p.DistanceKm = d
		pl, err := PropagationLoss(p)
		if err != nil {
			return MetricSeries{}, err
		}
		ms.Points = append(ms.Points, MetricPoint{X: d, Y: pl})
	}
	return ms, nil
}

// ComputeSlicingSeries evaluates Throughput and Latency for users 1..users, where user i sees an
// offered load of baseLoad*i.
func ComputeSlicingSeries(svc ServiceType, users int, baseLoad float64) (SlicingSeries, error) {
	if err := checkCount("user count", users); err != nil {
		return SlicingSeries{}, err
	}
	if users > maxSweepPoints {
		return SlicingSeries{}, invalidParamf("user count %d exceeds %d", users, maxSweepPoints)
	}
	if err := checkNonNegative("base load", baseLoad); err != nil {
		return SlicingSeries{}, err
	}

	res := SlicingSeries{
		Throughput: MetricSeries{
			Name:   fmt.Sprintf("%s throughput", svc),
			XLabel: "Number of Users",
			YLabel: "Throughput (Mbps)",
			Points: make([]MetricPoint, 0, users),
		},
		Latency: MetricSeries{
			Name:   fmt.Sprintf("%s latency", svc),
			XLabel: "Number of Users",
			YLabel: "Latency (ms)",
			Points: make([]MetricPoint, 0, users),
		},
	}
	for i := 1; i <= users; i++ {
		sr, err := SliceMetrics(SliceParameters{Service: svc, Load: baseLoad * float64(i), Users: i})
		if err != nil {
			return SlicingSeries{}, err
		}
		res.Throughput.Points = append(res.Throughput.Points, MetricPoint{X: float64(i), Y: sr.ThroughputMbps})
		res.Latency.Points = append(res.Latency.Points, MetricPoint{X: float64(i), Y: sr.LatencyMs})
	}
	return res, nil
}
