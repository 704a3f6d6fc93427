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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestQFunctionAtZero(t *testing.T) {
	assert.InDelta(t, 0.5, QFunction(0), 1e-7)
	assert.InDelta(t, 0.0, Erf(0), 1e-7)
}

func TestQFunctionAccuracy(t *testing.T) {
	for x := 0.0; x <= 10.0; x += 0.01 {
		assert.InDeltaf(t, distuv.UnitNormal.Survival(x), QFunction(x), 1e-7, "x=%v", x)
	}
	for x := -5.0; x <= 5.0; x += 0.05 {
		assert.InDeltaf(t, math.Erf(x), Erf(x), 2e-7, "x=%v", x)
	}
}

func TestQFunctionDecreasing(t *testing.T) {
	prev := QFunction(0)
	for x := 0.05; x <= 30.0; x += 0.05 {
		q := QFunction(x)
		assert.Truef(t, q < prev, "Q(%v)=%v not below %v", x, q, prev)
		assert.True(t, q > 0)
		prev = q
	}

	// far tail: must stay a number and keep approaching 0
	for x := 30.0; x <= 50.0; x += 0.5 {
		q := QFunction(x)
		assert.False(t, math.IsNaN(q))
		assert.True(t, q >= 0 && q <= prev)
		prev = q
	}
	assert.Equal(t, 0.0, QFunction(50))
	assert.Equal(t, 0.0, QFunction(math.Inf(1)))
}

func TestQFunctionSymmetry(t *testing.T) {
	for x := 0.25; x <= 6.0; x += 0.25 {
		assert.InDelta(t, 1.0, QFunction(x)+QFunction(-x), 1e-15)
		assert.InDelta(t, -Erf(x), Erf(-x), 1e-15)
	}
	// the approximation is not exact at 0: erf(0) = 1 - (a1+..+a5) = 1e-9
	assert.InDelta(t, 0.5, QFunction(0), 1.5e-7)
	assert.InDelta(t, 0.0, Erf(0), 1.5e-7)
	assert.InDelta(t, 0.0, Erf(math.Copysign(0, -1)), 1.5e-7)
	assert.Equal(t, 1.0, QFunction(math.Inf(-1)))
	assert.True(t, math.IsNaN(QFunction(math.NaN())))
}
