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

import "strings"

type Modulation int

const (
	ModulationInvalid Modulation = 0
	BPSK              Modulation = 1
	QPSK              Modulation = 2
	QAM16             Modulation = 3
	QAM64             Modulation = 4
)

var AllModulations = []Modulation{BPSK, QPSK, QAM16, QAM64}

func (m Modulation) String() string {
	switch m {
	case BPSK:
		return "BPSK"
	case QPSK:
		return "QPSK"
	case QAM16:
		return "16-QAM"
	case QAM64:
		return "64-QAM"
	default:
		return "invalid"
	}
}

// ParseModulation parses a modulation name such as "BPSK", "16-QAM" or "qam64" (case-insensitive).
func ParseModulation(s string) (Modulation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bpsk":
		return BPSK, nil
	case "qpsk":
		return QPSK, nil
	case "16-qam", "16qam", "qam16", "qam-16":
		return QAM16, nil
	case "64-qam", "64qam", "qam64", "qam-64":
		return QAM64, nil
	default:
		return ModulationInvalid, InvalidParamf("unknown modulation: %q", s)
	}
}

// Architecture is the beamforming architecture of an antenna array.
type Architecture int

const (
	ArchitectureInvalid Architecture = 0
	Analog              Architecture = 1 // phase-shifter network
	Digital             Architecture = 2 // per-antenna baseband processing
	Hybrid              Architecture = 3
)

var AllArchitectures = []Architecture{Analog, Digital, Hybrid}

func (a Architecture) String() string {
	switch a {
	case Analog:
		return "analog"
	case Digital:
		return "digital"
	case Hybrid:
		return "hybrid"
	default:
		return "invalid"
	}
}

func ParseArchitecture(s string) (Architecture, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "analog":
		return Analog, nil
	case "digital":
		return Digital, nil
	case "hybrid":
		return Hybrid, nil
	default:
		return ArchitectureInvalid, InvalidParamf("unknown beamforming architecture: %q", s)
	}
}

// Environment selects the propagation (path loss) model.
type Environment int

const (
	EnvironmentInvalid Environment = 0
	Urban              Environment = 1 // Okumura-Hata, urban macro cell
	Indoor             Environment = 2 // simplified log-distance indoor model
	FreeSpace          Environment = 3
)

var AllEnvironments = []Environment{Urban, Indoor, FreeSpace}

func (e Environment) String() string {
	switch e {
	case Urban:
		return "urban"
	case Indoor:
		return "indoor"
	case FreeSpace:
		return "freespace"
	default:
		return "invalid"
	}
}

func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urban", "hata", "okumura-hata":
		return Urban, nil
	case "indoor":
		return Indoor, nil
	case "freespace", "free-space", "fspl":
		return FreeSpace, nil
	default:
		return EnvironmentInvalid, InvalidParamf("unknown environment: %q", s)
	}
}

// ServiceType is the service profile of a network slice.
type ServiceType int

const (
	ServiceTypeInvalid ServiceType = 0
	EMBB               ServiceType = 1 // enhanced mobile broadband
	URLLC              ServiceType = 2 // ultra-reliable low-latency communication
	MMTC               ServiceType = 3 // massive machine-type communication
)

var AllServiceTypes = []ServiceType{EMBB, URLLC, MMTC}

func (st ServiceType) String() string {
	switch st {
	case EMBB:
		return "eMBB"
	case URLLC:
		return "URLLC"
	case MMTC:
		return "mMTC"
	default:
		return "invalid"
	}
}

func ParseServiceType(s string) (ServiceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "embb":
		return EMBB, nil
	case "urllc":
		return URLLC, nil
	case "mmtc":
		return MMTC, nil
	default:
		return ServiceTypeInvalid, InvalidParamf("unknown service type: %q", s)
	}
}
