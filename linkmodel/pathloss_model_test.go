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
	"github.com/stretchr/testify/require"

	. "github.com/linkperf/linkperf/types"
)

func TestPathLossUrbanReference(t *testing.T) {
	pl, err := PathLoss(Urban, 1900, 1, 30, 1.5)
	require.Nil(t, err)
	assert.InDelta(t, 134.90929750765474, pl, 1e-9)

	pl, err = PathLoss(Urban, 900, 5, 30, 1.5)
	require.Nil(t, err)
	assert.InDelta(t, 151.04120495205245, pl, 1e-9)

	pl, err = PathLoss(Urban, DefaultFrequencyMHz, 1, DefaultBsHeightM, DefaultMobileHeightM)
	require.Nil(t, err)
	assert.InDelta(t, 101.45710330672877, pl, 1e-9)
}

func TestPathLossIndoorIncreasing(t *testing.T) {
	for _, f := range []float64{100, 2400, 28000} {
		prev := math.Inf(-1)
		for _, d := range mustSweepRange(0.01, 2, 0.01) {
			pl, err := PathLoss(Indoor, f, d, 3, 1.5)
			require.Nil(t, err)
			assert.True(t, pl > prev)
			prev = pl
		}
	}

	pl, err := PathLoss(Indoor, 2400, 1, 3, 1.5)
	require.Nil(t, err)
	assert.InDelta(t, -79.9457751657679, pl, 1e-9)
}

func TestPathLossFreeSpace(t *testing.T) {
	pl, err := PathLoss(FreeSpace, 1900, 1, 30, 1.5)
	require.Nil(t, err)
	assert.InDelta(t, 98.02507201905658, pl, 1e-9)

	// doubling the distance adds ~6 dB
	pl2, err := PathLoss(FreeSpace, 1900, 2, 30, 1.5)
	require.Nil(t, err)
	assert.InDelta(t, 20*math.Log10(2), pl2-pl, 1e-9)

	hata, err := PathLoss(Urban, 1900, 1, 30, 1.5)
	require.Nil(t, err)
	assert.True(t, hata > pl)
}

func TestPathLossInvalidParameters(t *testing.T) {
	for _, env := range AllEnvironments {
		_, err := PathLoss(env, 0, 1, 30, 1.5)
		assert.True(t, IsInvalidParameter(err))
		_, err = PathLoss(env, 900, -1, 30, 1.5)
		assert.True(t, IsInvalidParameter(err))
		_, err = PathLoss(env, 900, 1, 0, 1.5)
		assert.True(t, IsInvalidParameter(err))
		_, err = PathLoss(env, 900, 1, 30, -1.5)
		assert.True(t, IsInvalidParameter(err))
		_, err = PathLoss(env, math.NaN(), 1, 30, 1.5)
		assert.True(t, IsInvalidParameter(err))
		_, err = PathLoss(env, 900, math.Inf(1), 30, 1.5)
		assert.True(t, IsInvalidParameter(err))
	}
	_, err := PathLoss(EnvironmentInvalid, 900, 1, 30, 1.5)
	assert.True(t, IsInvalidParameter(err))
}

func TestPathLossOverflow(t *testing.T) {
	pl, err := PathLoss(Urban, 900, 1, 30, 1e308)
	assert.True(t, IsInvalidParameter(err))
	assert.Equal(t, 0.0, pl)

	pl, err = PathLoss(Indoor, 900, 1e300, 30, 1.5)
	require.NoError(t, err)
	assert.False(t, math.IsInf(pl, 0))
}

func TestHataValidRange(t *testing.T) {
	assert.True(t, HataValidRange(900, 1))
	assert.True(t, HataValidRange(150, 20))
	assert.False(t, HataValidRange(1900, 1))
	assert.False(t, HataValidRange(100, 5))
	assert.False(t, HataValidRange(900, 0.5))
	assert.False(t, HataValidRange(900, 25))
}

func TestPropagationLoss(t *testing.T) {
	pl, err := PropagationLoss(PropagationParameters{
		FrequencyMHz:  1900,
		DistanceKm:    1,
		BsHeightM:     30,
		MobileHeightM: 1.5,
		Environment:   Urban,
	})
	require.NoError(t, err)
	assert.InDelta(t, 134.90929750765474, pl, 1e-9)
}
