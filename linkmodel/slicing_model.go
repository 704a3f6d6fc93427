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
	"math"

	. "github.com/linkperf/linkperf/types"
)

// SliceResult is the throughput and latency of a slice at one operating point.
type SliceResult struct {
	ThroughputMbps float64
	LatencyMs      float64
}

// SliceMetrics evaluates Throughput and Latency of the slice described by p. The load is the
// effective load of the slice; p.Users must be >= 1.
func SliceMetrics(p SliceParameters) (SliceResult, error) {
	if err := checkCount("user count", p.Users); err != nil {
		return SliceResult{}, err
	}
	tp, err := Throughput(p.Service, p.Load)
	if err != nil {
		return SliceResult{}, err
	}
	lat, err := Latency(p.Service, p.Load)
	if err != nil {
		return SliceResult{}, err
	}
	return SliceResult{ThroughputMbps: tp, LatencyMs: lat}, nil
}

// Throughput returns the throughput (Mbps) a slice of the given service type delivers at the
// given offered load. It saturates at 1000 Mbps.
func Throughput(svc ServiceType, load float64) (float64, error) {
	if err := checkNonNegative("load", load); err != nil {
		return 0, err
	}

	var tp float64
	switch svc {
	case EMBB:
		tp = 100.0 * math.Log10(load+1.0)
	case URLLC:
		tp = 50.0 * math.Pow(load, 0.7)
	case MMTC:
		tp = 30.0 * math.Log10(load+1.0)
	default:
		return 0, invalidParamf("unknown service type: %d", int(svc))
	}
	return math.Min(sliceMaxThroughputMbps, tp), nil
}

// Latency returns the latency (ms) of a slice of the given service type at the given offered load.
func Latency(svc ServiceType, load float64) (float64, error) {
	if err := checkNonNegative("load", load); err != nil {
		return 0, err
	}

	switch svc {
	case EMBB:
		return 10.0 + 0.2*load, nil
	case URLLC:
		return math.Max(sliceMinLatencyMs, 2.0+0.1*load), nil
	case MMTC:
		return 15.0 + 0.5*load, nil
	default:
		return 0, invalidParamf("unknown service type: %d", int(svc))
	}
}
