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

import "math"

// Abramowitz & Stegun 7.1.26 coefficients, |error| <= 1.5e-7.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

// erfcTail returns the A&S approximation of erfc(z) for z >= 0.
func erfcTail(z float64) float64 {
	t := 1.0 / (1.0 + erfP*z)
	poly := ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t + erfA1) * t
	return poly * math.Exp(-z*z)
}

// Erf approximates the error function (A&S 7.1.26).
func Erf(x float64) float64 {
	if x < 0 {
		return -(1.0 - erfcTail(-x))
	}
	return 1.0 - erfcTail(x)
}

// QFunction returns the tail probability P(X > x) of a standard normal variable X.
// The result has an absolute error below 1.5e-7. For x >= 0 the tail is evaluated directly
// instead of as 1-erf, so it keeps decreasing towards 0 for large x (it underflows to exactly 0
// somewhere above x=38) and never becomes NaN. A NaN input gives NaN.
func QFunction(x float64) float64 {
	if x < 0 {
		return 1.0 - 0.5*erfcTail(-x/math.Sqrt2)
	}
	return 0.5 * erfcTail(x/math.Sqrt2)
}
