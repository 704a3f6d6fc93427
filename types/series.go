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

import "fmt"

// MetricPoint is a single (independent-variable, metric-value) pair of a MetricSeries.
type MetricPoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// MetricSeries is an ordered sequence of metric points, with the labels a presentation
// layer needs to draw it.
type MetricSeries struct {
	Name   string        `yaml:"name" json:"name"`
	XLabel string        `yaml:"x-label" json:"xLabel"`
	YLabel string        `yaml:"y-label" json:"yLabel"`
	Points []MetricPoint `yaml:"points" json:"points"`
}

// Len returns the number of points.
func (ms MetricSeries) Len() int {
	return len(ms.Points)
}

// Xs returns the independent-variable values.
func (ms MetricSeries) Xs() []float64 {
	xs := make([]float64, len(ms.Points))
	for i, p := range ms.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the metric values.
func (ms MetricSeries) Ys() []float64 {
	ys := make([]float64, len(ms.Points))
	for i, p := range ms.Points {
		ys[i] = p.Y
	}
	return ys
}

// FormatCapacity formats a capacity in bits/s using the largest unit that keeps the value >= 1.
func FormatCapacity(bps float64) string {
	switch {
	case bps < BpsPerKbps:
		return fmt.Sprintf("%.2f bps", bps)
	case bps < BpsPerMbps:
		return fmt.Sprintf("%.2f kbps", bps/BpsPerKbps)
	case bps < BpsPerGbps:
		return fmt.Sprintf("%.2f Mbps", bps/BpsPerMbps)
	default:
		return fmt.Sprintf("%.2f Gbps", bps/BpsPerGbps)
	}
}
