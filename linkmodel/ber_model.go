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

// BerFor returns the bit-error-rate of modulation mod over an AWGN channel at the given SNR.
// snrLinear is a linear power ratio, not dB: callers convert with DbToLinear first.
// An SNR of 0 is accepted and gives the no-signal BER (0.5 for BPSK/QPSK).
func BerFor(mod Modulation, snrLinear float64) (float64, error) {
	if err := checkNonNegative("SNR (linear)", snrLinear); err != nil {
		return 0, err
	}

	switch mod {
	case BPSK, QPSK:
		return QFunction(math.Sqrt(2.0 * snrLinear)), nil
	case QAM16:
		return (3.0 / 8.0) * QFunction(math.Sqrt((4.0/5.0)*snrLinear)), nil
	case QAM64:
		return (7.0 / 24.0) * QFunction(math.Sqrt((6.0/7.0)*snrLinear)), nil
	default:
		return 0, invalidParamf("unknown modulation: %d", int(mod))
	}
}
