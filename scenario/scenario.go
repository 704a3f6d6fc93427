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

// Package scenario reads batch evaluation files and runs their sweeps through linkmodel.
//
// A scenario file is YAML:
//
//	name: demo
//	sweeps:
//	  - model: ber
//	    modulation: 16-QAM
//	    snr-db: {from: 1, to: 20, step: 1}
//	  - model: beamforming
//	    architecture: hybrid
//	    antennas: 16
//	    snr-db: 10
//
// Omitted sweep parameters take the linkmodel defaults.
package scenario

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/linkperf/linkperf/linkmodel"
	. "github.com/linkperf/linkperf/types"
)

// Span is an inclusive sweep range. In YAML it is either a {from, to, step} mapping, where
// step defaults to 1, or a single number.
type Span struct {
	From float64 `yaml:"from" json:"from"`
	To   float64 `yaml:"to" json:"to"`
	Step float64 `yaml:"step" json:"step"`
}

// SingleSpan returns the Span holding only v.
func SingleSpan(v float64) *Span {
	return &Span{From: v, To: v, Step: 1}
}

func (s *Span) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		*s = *SingleSpan(v)
		return nil
	}

	type plain Span
	p := plain{Step: 1}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Span(p)
	return nil
}

// IsSingle returns true if the span holds a single value.
func (s Span) IsSingle() bool {
	return s.From == s.To
}

// Values returns the sweep grid of the span.
func (s Span) Values() ([]float64, error) {
	return linkmodel.SweepRange(s.From, s.To, s.Step)
}

// Sweep is one model evaluation of a scenario. Which fields apply depends on Model.
type Sweep struct {
	Model string `yaml:"model"`

	Modulation string `yaml:"modulation,omitempty"`
	SnrDb      *Span  `yaml:"snr-db,omitempty"`

	Architecture string `yaml:"architecture,omitempty"`
	Antennas     *int   `yaml:"antennas,omitempty"`
	Users        *int   `yaml:"users,omitempty"`

	AntennaOptions []int `yaml:"antenna-options,omitempty"`

	Environment   string   `yaml:"environment,omitempty"`
	FrequencyMHz  *float64 `yaml:"frequency-mhz,omitempty"`
	BsHeightM     *float64 `yaml:"bs-height-m,omitempty"`
	MobileHeightM *float64 `yaml:"mobile-height-m,omitempty"`
	DistanceKm    *Span    `yaml:"distance-km,omitempty"`

	Service string   `yaml:"service,omitempty"`
	Load    *float64 `yaml:"load,omitempty"`
}

// Scenario is a named batch of sweeps.
type Scenario struct {
	Name   string  `yaml:"name"`
	Sweeps []Sweep `yaml:"sweeps"`
}

// Parse decodes a scenario from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	return decode(bytes.NewReader(data))
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scenario")
	}
	defer f.Close()

	sc, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sc, nil
}

func decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	sc := &Scenario{}
	if err := dec.Decode(sc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty scenario")
		}
		return nil, errors.Wrapf(err, "parse scenario")
	}
	if len(sc.Sweeps) == 0 {
		return nil, errors.New("scenario has no sweeps")
	}
	for i := range sc.Sweeps {
		sc.Sweeps[i].Model = strings.ToLower(strings.TrimSpace(sc.Sweeps[i].Model))
		if sc.Sweeps[i].Model == "" {
			return nil, errors.Errorf("sweep %d: missing model", i+1)
		}
	}
	return sc, nil
}

// Result holds the computed series of a scenario, in sweep order.
type Result struct {
	Name   string         `yaml:"name" json:"name"`
	Series []MetricSeries `yaml:"series" json:"series"`
}
