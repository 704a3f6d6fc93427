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

package types

import (
	"math"
)

// DbValue is a value in the logarithmic (dB) domain: a ratio in dB or a power in dBm.
type DbValue = float64

const (
	BpsPerKbps = 1.0e3
	BpsPerMbps = 1.0e6
	BpsPerGbps = 1.0e9
)

// LinkParameters holds the parameters of a (multi-antenna) radio link.
type LinkParameters struct {
	BandwidthHz  float64
	SnrDb        DbValue
	Antennas     int
	Users        int
	Architecture Architecture
}

// PropagationParameters holds the parameters for a path loss evaluation. Frequency is in MHz,
// distance in km and the antenna heights in meters.
type PropagationParameters struct {
	FrequencyMHz  float64
	DistanceKm    float64
	BsHeightM     float64
	MobileHeightM float64
	Environment   Environment
}

// SliceParameters holds the parameters for a network slice evaluation.
type SliceParameters struct {
	Service ServiceType
	Load    float64
	Users   int
}

// DbToLinear converts a dB ratio to linear scale.
func DbToLinear(db DbValue) float64 {
	return math.Pow(10, db/10.0)
}

// LinearToDb converts a linear ratio to dB.
func LinearToDb(v float64) DbValue {
	return 10.0 * math.Log10(v)
}

// IsFinite returns true if v is neither NaN nor +/-Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
