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

// Package linkmodel implements closed-form analytical models of wireless link performance:
// bit-error-rate of digital modulations, beamforming and massive-MIMO capacity, propagation
// path loss and network slice throughput/latency. All functions are pure and deterministic;
// invalid input is reported as an error wrapping ErrInvalidParameter before any formula is
// evaluated.
package linkmodel

import (
	. "github.com/linkperf/linkperf/types"
)

func invalidParamf(format string, args ...interface{}) error {
	return InvalidParamf(format, args...)
}

func checkPositive(name string, v float64) error {
	if !IsFinite(v) || v <= 0 {
		return invalidParamf("%s must be a finite value > 0, got %v", name, v)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if !IsFinite(v) || v < 0 {
		return invalidParamf("%s must be a finite value >= 0, got %v", name, v)
	}
	return nil
}

func checkCount(name string, n int) error {
	if n < 1 {
		return invalidParamf("%s must be >= 1, got %d", name, n)
	}
	return nil
}
