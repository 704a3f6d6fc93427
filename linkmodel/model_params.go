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
	. "github.com/linkperf/linkperf/types"
)

// fixed model parameters
const (
	beamformingBandwidthHz float64 = 100e6 // channel bandwidth of the beamforming model
	beamformingFloorBps    float64 = 1e3   // lower bound of per-user capacity, keeps log-scale plots non-empty

	mimoSnrDb       DbValue = 25.0  // operating SNR of the massive-MIMO model
	mimoBandwidthHz float64 = 100e6 // channel bandwidth of the massive-MIMO model

	sliceMaxThroughputMbps float64 = 1000.0
	sliceMinLatencyMs      float64 = 1.0 // lower latency bound of URLLC

	// Okumura-Hata validity range
	hataMinFrequencyMHz float64 = 150.0
	hataMaxFrequencyMHz float64 = 1500.0
	hataMinDistanceKm   float64 = 1.0
	hataMaxDistanceKm   float64 = 20.0
)

// beamformingGain is the capacity gain factor per beamforming architecture.
var beamformingGain = map[Architecture]float64{
	Analog:  1.15,
	Digital: 1.35,
	Hybrid:  1.25,
}

// default sweeps
var (
	DefaultMimoAntennaOptions = []int{8, 16, 32, 64}
	DefaultBerSnrRangeDb      = mustSweepRange(1, 20, 1)
	DefaultDistancesKm        = mustSweepRange(1, 20, 1)
)

// default model inputs
const (
	DefaultArchitecture     = Analog
	DefaultMaxAntennas      = 8
	DefaultBeamformingUsers = 10
	DefaultBeamformingSnrDb = 10.0
	DefaultMimoUsers        = 2
	DefaultModulation       = BPSK
	DefaultEnvironment      = Urban
	DefaultFrequencyMHz     = 100.0
	DefaultBsHeightM        = 30.0
	DefaultMobileHeightM    = 1.5
	DefaultServiceType      = EMBB
	DefaultSliceUsers       = 10
	DefaultSliceBaseLoad    = 1.0
)
