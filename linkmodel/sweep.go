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

	"gonum.org/v1/gonum/floats"
)

const maxSweepPoints = 100000

// SweepRange returns the grid from, from+step, ... up to and including 'to' (within rounding).
func SweepRange(from, to, step float64) ([]float64, error) {
	if err := checkPositive("sweep step", step); err != nil {
		return nil, err
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		return nil, invalidParamf("sweep bounds must be finite, got [%v, %v]", from, to)
	}
	if to < from {
		return nil, invalidParamf("sweep end %v is below sweep start %v", to, from)
	}

	nf := math.Floor((to-from)/step+1e-9) + 1
	if nf > maxSweepPoints {
		return nil, invalidParamf("sweep of %.0f points exceeds the maximum of %d", nf, maxSweepPoints)
	}
	n := int(nf)
	if n == 1 {
		return []float64{from}, nil
	}
	return floats.Span(make([]float64, n), from, from+float64(n-1)*step), nil
}

func mustSweepRange(from, to, step float64) []float64 {
	r, err := SweepRange(from, to, step)
	if err != nil {
		panic(err)
	}
	return r
}
