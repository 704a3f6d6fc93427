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

func TestBeamformingCapacity(t *testing.T) {
	c, err := BeamformingCapacity(Analog, 8, 10, 10)
	require.Nil(t, err)
	assert.InEpsilon(t, 14065578.450390125, c, 1e-12)

	cd, err := BeamformingCapacity(Digital, 8, 10, 10)
	require.Nil(t, err)
	ch, err := BeamformingCapacity(Hybrid, 8, 10, 10)
	require.Nil(t, err)
	assert.InEpsilon(t, c*1.35/1.15, cd, 1e-12)
	assert.True(t, c < ch && ch < cd)
}

func TestBeamformingDigitalBeatsAnalog(t *testing.T) {
	for _, snrDb := range []DbValue{0, 10, 20, 30} {
		for _, users := range []int{1, 4, 20} {
			for _, antennas := range []int{1, 8, 64} {
				a, err := BeamformingCapacity(Analog, antennas, users, snrDb)
				require.Nil(t, err)
				d, err := BeamformingCapacity(Digital, antennas, users, snrDb)
				require.Nil(t, err)
				assert.Truef(t, d > a, "snr=%v users=%d antennas=%d", snrDb, users, antennas)
			}
		}
	}
}

func TestBeamformingFloor(t *testing.T) {
	c, err := BeamformingCapacity(Analog, 64, 20, -50)
	require.Nil(t, err)
	assert.Equal(t, 1000.0, c)

	c, err = BeamformingCapacity(Hybrid, 1, 1, -3000)
	require.Nil(t, err)
	assert.Equal(t, 1000.0, c)

	for _, arch := range AllArchitectures {
		for snrDb := -60.0; snrDb <= 60.0; snrDb += 5 {
			c, err := BeamformingCapacity(arch, 100, 20, snrDb)
			require.Nil(t, err)
			assert.True(t, c >= 1000.0)
		}
	}
}

func TestBeamformingInvalidParameters(t *testing.T) {
	_, err := BeamformingCapacity(ArchitectureInvalid, 8, 10, 10)
	assert.True(t, IsInvalidParameter(err))
	_, err = BeamformingCapacity(Analog, 0, 10, 10)
	assert.True(t, IsInvalidParameter(err))
	_, err = BeamformingCapacity(Analog, 8, 0, 10)
	assert.True(t, IsInvalidParameter(err))
	_, err = BeamformingCapacity(Analog, 8, -3, 10)
	assert.True(t, IsInvalidParameter(err))
	_, err = BeamformingCapacity(Analog, 8, 10, math.NaN())
	assert.True(t, IsInvalidParameter(err))
	_, err = BeamformingCapacity(Analog, 8, 10, math.Inf(1))
	assert.True(t, IsInvalidParameter(err))
	_, err = BeamformingCapacity(Analog, 8, 10, 4000)
	assert.True(t, IsInvalidParameter(err))
}

func TestMimoPerformance(t *testing.T) {
	p8, err := MimoPerformance(8, 2)
	require.Nil(t, err)
	assert.InDelta(t, 10.305960337188239, p8.SpectralEfficiency, 1e-9)
	assert.InEpsilon(t, p8.SpectralEfficiency*100e6, p8.Capacity, 1e-12)

	p64, err := MimoPerformance(64, 2)
	require.Nil(t, err)
	assert.InDelta(t, 13.30496279899628, p64.SpectralEfficiency, 1e-9)
	assert.True(t, p64.SpectralEfficiency > p8.SpectralEfficiency)

	// more users share the array gain
	p64u8, err := MimoPerformance(64, 8)
	require.Nil(t, err)
	assert.True(t, p64u8.SpectralEfficiency < p64.SpectralEfficiency)
}

func TestMimoInvalidParameters(t *testing.T) {
	_, err := MimoPerformance(0, 2)
	assert.True(t, IsInvalidParameter(err))
	_, err = MimoPerformance(8, 0)
	assert.True(t, IsInvalidParameter(err))
}

func TestLinkCapacityBandwidth(t *testing.T) {
	p := LinkParameters{BandwidthHz: 100e6, SnrDb: 20, Antennas: 16, Users: 4, Architecture: Hybrid}
	c100, err := LinkCapacity(p)
	require.NoError(t, err)
	c, err := BeamformingCapacity(Hybrid, 16, 4, 20)
	require.NoError(t, err)
	assert.Equal(t, c, c100)

	p.BandwidthHz = 200e6
	c200, err := LinkCapacity(p)
	require.NoError(t, err)
	assert.InDelta(t, 2*c100, c200, 1e-6)

	p.BandwidthHz = 0
	_, err = LinkCapacity(p)
	assert.True(t, IsInvalidParameter(err))

	p.BandwidthHz = 1e308
	c, err = LinkCapacity(p)
	assert.True(t, IsInvalidParameter(err))
	assert.Equal(t, 0.0, c)
}
