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

// BeamformingCapacity returns the per-user capacity (bits/s) of a 100 MHz channel served by an
// array of the given number of antennas, shared by the given number of users.
//
// The Shannon capacity at snrDb is scaled by the gain factor of the beamforming architecture,
// split over the users and de-rated by sqrt(antennas), which models the diminishing marginal gain
// per added antenna. The result is never below 1000 bps.
func BeamformingCapacity(arch Architecture, antennas int, users int, snrDb DbValue) (float64, error) {
	return LinkCapacity(LinkParameters{
		BandwidthHz:  beamformingBandwidthHz,
		SnrDb:        snrDb,
		Antennas:     antennas,
		Users:        users,
		Architecture: arch,
	})
}

// LinkCapacity is BeamformingCapacity for an arbitrary channel bandwidth.
func LinkCapacity(p LinkParameters) (float64, error) {
	gain, ok := beamformingGain[p.Architecture]
	if !ok {
		return 0, invalidParamf("unknown beamforming architecture: %d", int(p.Architecture))
	}
	if err := checkPositive("bandwidth", p.BandwidthHz); err != nil {
		return 0, err
	}
	if err := checkCount("antenna count", p.Antennas); err != nil {
		return 0, err
	}
	if err := checkCount("user count", p.Users); err != nil {
		return 0, err
	}
	snrLinear := DbToLinear(p.SnrDb)
	if !IsFinite(p.SnrDb) || !IsFinite(snrLinear) {
		return 0, invalidParamf("SNR %v dB is out of range", p.SnrDb)
	}

	capacity := p.BandwidthHz * math.Log2(1.0+snrLinear) * gain
	capacity /= float64(p.Users)
	capacity /= math.Sqrt(float64(p.Antennas))
	if !IsFinite(capacity) {
		return 0, invalidParamf("capacity at %v Hz and %v dB is out of range", p.BandwidthHz, p.SnrDb)
	}
	return math.Max(capacity, beamformingFloorBps), nil
}
