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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModulation(t *testing.T) {
	for _, name := range []string{"BPSK", "bpsk", " Bpsk "} {
		m, err := ParseModulation(name)
		assert.Nil(t, err)
		assert.Equal(t, BPSK, m)
	}
	m, err := ParseModulation("16-QAM")
	assert.Nil(t, err)
	assert.Equal(t, QAM16, m)
	m, err = ParseModulation("qam64")
	assert.Nil(t, err)
	assert.Equal(t, QAM64, m)

	m, err = ParseModulation("8-PSK")
	assert.NotNil(t, err)
	assert.Equal(t, ModulationInvalid, m)

	for _, m := range AllModulations {
		parsed, err := ParseModulation(m.String())
		assert.Nil(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseEnums(t *testing.T) {
	for _, a := range AllArchitectures {
		parsed, err := ParseArchitecture(a.String())
		assert.Nil(t, err)
		assert.Equal(t, a, parsed)
	}
	for _, e := range AllEnvironments {
		parsed, err := ParseEnvironment(e.String())
		assert.Nil(t, err)
		assert.Equal(t, e, parsed)
	}
	for _, st := range AllServiceTypes {
		parsed, err := ParseServiceType(st.String())
		assert.Nil(t, err)
		assert.Equal(t, st, parsed)
	}

	_, err := ParseArchitecture("optical")
	assert.True(t, IsInvalidParameter(err))
	_, err = ParseEnvironment("rural")
	assert.True(t, IsInvalidParameter(err))
	_, err = ParseServiceType("v2x")
	assert.True(t, IsInvalidParameter(err))
	_, err = ParseModulation("8psk")
	assert.True(t, IsInvalidParameter(err))
	assert.Contains(t, err.Error(), `unknown modulation: "8psk"`)
	assert.Equal(t, "invalid", Architecture(42).String())
}

func TestDbConversion(t *testing.T) {
	assert.Equal(t, 1.0, DbToLinear(0))
	assert.InDelta(t, 100.0, DbToLinear(20), 1e-12)
	assert.InDelta(t, 316.227766, DbToLinear(25), 1e-6)
	assert.InDelta(t, 10.0, LinearToDb(10), 1e-12)
	assert.False(t, IsFinite(DbToLinear(5000)))
	assert.True(t, IsFinite(DbToLinear(-50)))
}

func TestMetricSeries(t *testing.T) {
	ms := MetricSeries{Points: []MetricPoint{{1, 10}, {2, 20}, {3, 30}}}
	assert.Equal(t, 3, ms.Len())
	assert.Equal(t, []float64{1, 2, 3}, ms.Xs())
	assert.Equal(t, []float64{10, 20, 30}, ms.Ys())
	assert.Equal(t, 0, MetricSeries{}.Len())
}

func TestFormatCapacity(t *testing.T) {
	assert.Equal(t, "999.00 bps", FormatCapacity(999))
	assert.Equal(t, "1.00 kbps", FormatCapacity(1000))
	assert.Equal(t, "14.07 Mbps", FormatCapacity(14065578.45))
	assert.Equal(t, "1.03 Gbps", FormatCapacity(1.0306e9))
}
