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

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/linkperf/linkperf/scenario"
	. "github.com/linkperf/linkperf/types"
)

// OutputFormat selects how command results are printed.
type OutputFormat int

const (
	OutputTable OutputFormat = iota
	OutputYaml
	OutputJson
	OutputCsv
)

func (f OutputFormat) String() string {
	switch f {
	case OutputTable:
		return "table"
	case OutputYaml:
		return "yaml"
	case OutputJson:
		return "json"
	case OutputCsv:
		return "csv"
	default:
		return "invalid"
	}
}

// ParseOutputFormat parses "table", "yaml", "json" or "csv".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "table":
		return OutputTable, nil
	case "yaml", "yml":
		return OutputYaml, nil
	case "json":
		return OutputJson, nil
	case "csv":
		return OutputCsv, nil
	default:
		return OutputTable, errors.Errorf("unknown output format: %q", s)
	}
}

// WriteResult prints res to w in the given format.
func WriteResult(w io.Writer, res *scenario.Result, format OutputFormat) error {
	switch format {
	case OutputTable:
		return writeTable(w, res.Series)
	case OutputYaml:
		return scenario.Encode(w, res, scenario.FormatYAML)
	case OutputJson:
		return scenario.Encode(w, res, scenario.FormatJSON)
	case OutputCsv:
		return scenario.Encode(w, res, scenario.FormatCSV)
	default:
		return errors.Errorf("unknown output format: %d", int(format))
	}
}

// writeTable prints each series as a two-column table, with a readable capacity column
// for series measured in bits/s.
func writeTable(w io.Writer, series []MetricSeries) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range series {
		if i > 0 {
			_, _ = fmt.Fprintln(tw)
		}
		isCapacity := strings.HasSuffix(s.YLabel, "(bps)")
		_, _ = fmt.Fprintf(tw, "# %s\n", s.Name)
		if isCapacity {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t\n", s.XLabel, s.YLabel)
		} else {
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", s.XLabel, s.YLabel)
		}
		for _, p := range s.Points {
			if isCapacity {
				_, _ = fmt.Fprintf(tw, "%g\t%.6g\t%s\n", p.X, p.Y, FormatCapacity(p.Y))
			} else {
				_, _ = fmt.Fprintf(tw, "%g\t%.6g\n", p.X, p.Y)
			}
		}
	}
	return tw.Flush()
}
