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

func TestBerKnownValues(t *testing.T) {
	ber, err := BerFor(BPSK, 1.0)
	require.Nil(t, err)
	assert.InDelta(t, 0.07864960352514257, ber, 1e-7)

	ber, err = BerFor(QAM16, 10.0)
	require.Nil(t, err)
	assert.InDelta(t, 0.0008770753089463623, ber, 1e-7)

	ber, err = BerFor(BPSK, 0)
	require.Nil(t, err)
	assert.InDelta(t, 0.5, ber, 1e-7)
}

func TestBerBpskEqualsQpsk(t *testing.T) {
	for _, snrDb := range mustSweepRange(-10, 30, 0.5) {
		snr := DbToLinear(snrDb)
		b1, err := BerFor(BPSK, snr)
		require.Nil(t, err)
		b2, err := BerFor(QPSK, snr)
		require.Nil(t, err)
		assert.Equal(t, b1, b2)
	}
}

func TestBerDecreasingInSnr(t *testing.T) {
	for _, mod := range AllModulations {
		prev := math.Inf(1)
		for _, snrDb := range mustSweepRange(-10, 20, 0.5) {
			ber, err := BerFor(mod, DbToLinear(snrDb))
			require.Nil(t, err)
			assert.Truef(t, ber < prev, "%s: BER at %v dB not decreasing", mod, snrDb)
			prev = ber
		}
	}

	ber, err := BerFor(QAM16, 100)
	assert.Nil(t, err)
	assert.True(t, ber < 1e-3)
}

func TestBerAt12Db(t *testing.T) {
	snr := DbToLinear(12)
	b2, err := BerFor(QPSK, snr)
	require.NoError(t, err)
	b16, err := BerFor(QAM16, snr)
	require.NoError(t, err)
	b64, err := BerFor(QAM64, snr)
	require.NoError(t, err)

	assert.InEpsilon(t, 9.030636808432694e-09, b2, 1e-9)
	assert.InEpsilon(t, 6.934430946603263e-05, b16, 1e-9)
	// the 64-QAM prefactor and SNR scaling put it below 16-QAM here
	assert.InEpsilon(t, 3.326272071020185e-05, b64, 1e-9)
	assert.True(t, b2 < b64)
}

func TestBerInvalidParameters(t *testing.T) {
	_, err := BerFor(ModulationInvalid, 10)
	assert.True(t, IsInvalidParameter(err))
	_, err = BerFor(Modulation(99), 10)
	assert.True(t, IsInvalidParameter(err))
	_, err = BerFor(BPSK, -1)
	assert.True(t, IsInvalidParameter(err))
	_, err = BerFor(BPSK, math.NaN())
	assert.True(t, IsInvalidParameter(err))
	_, err = BerFor(QAM64, math.Inf(1))
	assert.True(t, IsInvalidParameter(err))
}
