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

// MimoResult is the performance of a massive-MIMO cell.
type MimoResult struct {
	SpectralEfficiency float64 // bits/s/Hz
	Capacity           float64 // bits/s
}

// MimoPerformance returns spectral efficiency and capacity of a massive-MIMO base station with
// the given number of antennas serving the given number of users, at a fixed 25 dB SNR and
// 100 MHz bandwidth. The array gain grows linearly with antennas/users.
func MimoPerformance(antennas int, users int) (MimoResult, error) {
	if err := checkCount("antenna count", antennas); err != nil {
		return MimoResult{}, err
	}
	if err := checkCount("user count", users); err != nil {
		return MimoResult{}, err
	}

	snr := DbToLinear(mimoSnrDb)
	se := math.Log2(1.0 + snr*float64(antennas)/float64(users))
	return MimoResult{
		SpectralEfficiency: se,
		Capacity:           se * mimoBandwidthHz,
	}, nil
}
