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

package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.Nil(t, err)

	c.Observe(ModelBer, 20, time.Millisecond, nil)
	c.Observe(ModelBer, 11, time.Millisecond, nil)
	c.Observe(ModelPathLoss, 0, time.Microsecond, errors.New("invalid parameter"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Evaluations.WithLabelValues(ModelBer)))
	assert.Equal(t, 31.0, testutil.ToFloat64(c.SweepPoints.WithLabelValues(ModelBer)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Errors.WithLabelValues(ModelBer)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Errors.WithLabelValues(ModelPathLoss)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.SweepPoints.WithLabelValues(ModelPathLoss)))
	assert.Equal(t, uint64(2), histogramSampleCount(t, reg, "linkperf_evaluation_duration_seconds", ModelBer))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.Observe(ModelMimo, 4, time.Millisecond, nil)
	})
	assert.NotNil(t, c.Handler())
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	c1, err := NewCollector(reg)
	require.Nil(t, err)
	c2, err := NewCollector(reg)
	require.Nil(t, err)

	c1.Observe(ModelSlicing, 10, time.Millisecond, nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(c2.Evaluations.WithLabelValues(ModelSlicing)))
}

func TestHandlerExposesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.Nil(t, err)
	c.Observe(ModelBeamforming, 8, time.Millisecond, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.Nil(t, err)
	assert.Contains(t, string(body), `linkperf_sweep_points_total{model="beamforming"} 8`)
	assert.Contains(t, string(body), "linkperf_evaluations_total")
}

func TestServeStopsOnCancel(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Serve(ctx, "127.0.0.1:0")
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics endpoint did not stop")
	}
}

func histogramSampleCount(t *testing.T, reg *prometheus.Registry, name string, model string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.Nil(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue(m, "model") == model {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
