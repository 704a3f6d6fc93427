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

// PathLoss returns the propagation loss (dB) over distKm kilometers at freqMHz megahertz, for a base
// station antenna at hBsM meters and a mobile antenna at hMsM meters.
//
// Urban uses the Okumura-Hata model for urban macro cells (small/medium city mobile antenna
// correction). The formula is evaluated for any input, including frequencies and distances outside
// the 150-1500 MHz, 1-20 km range Hata fitted it to, and no large-city or COST-231 correction is
// applied; results there are an extrapolation. Use HataValidRange to flag such points.
// Indoor uses a simplified log-distance model with distance exponent 4. FreeSpace is the Friis
// free-space loss. Antenna heights are only used by the urban model but must be > 0 for all.
func PathLoss(env Environment, freqMHz float64, distKm float64, hBsM float64, hMsM float64) (DbValue, error) {
	if err := checkPositive("frequency", freqMHz); err != nil {
		return 0, err
	}
	if err := checkPositive("distance", distKm); err != nil {
		return 0, err
	}
	if err := checkPositive("base station height", hBsM); err != nil {
		return 0, err
	}
	if err := checkPositive("mobile height", hMsM); err != nil {
		return 0, err
	}

	var pl DbValue
	switch env {
	case Urban:
		pl = computeHataUrban(freqMHz, distKm, hBsM, hMsM)
	case Indoor:
		pl = computeIndoor(freqMHz, distKm)
	case FreeSpace:
		pl = computeFreeSpace(freqMHz, distKm)
	default:
		return 0, invalidParamf("unknown environment: %d", int(env))
	}
	if !IsFinite(pl) {
		return 0, invalidParamf("path loss over %v km at %v MHz is out of range", distKm, freqMHz)
	}
	return pl, nil
}

// PropagationLoss evaluates PathLoss for p.
func PropagationLoss(p PropagationParameters) (DbValue, error) {
	return PathLoss(p.Environment, p.FrequencyMHz, p.DistanceKm, p.BsHeightM, p.MobileHeightM)
}

// HataValidRange returns true if (freqMHz, distKm) lies inside the range the Okumura-Hata model
// was fitted to.
func HataValidRange(freqMHz float64, distKm float64) bool {
	return freqMHz >= hataMinFrequencyMHz && freqMHz <= hataMaxFrequencyMHz &&
		distKm >= hataMinDistanceKm && distKm <= hataMaxDistanceKm
}

// mobileAntennaCorrection is the Hata a(hm) term for small/medium cities.
func mobileAntennaCorrection(hMsM float64) DbValue {
	lg := math.Log10(11.75 * hMsM)
	return 3.2*lg*lg - 4.97
}

func computeHataUrban(freqMHz, distKm, hBsM, hMsM float64) DbValue {
	logHb := math.Log10(hBsM)
	return 69.55 + 26.16*math.Log10(freqMHz) - 13.82*logHb - mobileAntennaCorrection(hMsM) +
		(44.9-6.55*logHb)*math.Log10(distKm)
}

func computeIndoor(freqMHz, distKm float64) DbValue {
	return 40.0*math.Log10(distKm) + 20.0*math.Log10(freqMHz) - 147.55
}

func computeFreeSpace(freqMHz, distKm float64) DbValue {
	return 20.0*math.Log10(distKm) + 20.0*math.Log10(freqMHz) + 32.45
}
