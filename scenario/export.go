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

package scenario

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/linkperf/linkperf/logger"
)

// Format is an export encoding of a Result.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "invalid"
	}
}

// ParseFormat parses "yaml", "json" or "csv".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatYAML, errors.Errorf("unknown export format: %q", s)
	}
}

// FormatOf returns the export format selected by the file extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatYAML, errors.Errorf("missing file extension (.yaml, .json or .csv): %s", path)
	}
	return ParseFormat(ext)
}

// csvRow is one point of a series in CSV output.
type csvRow struct {
	Series string  `csv:"series"`
	XLabel string  `csv:"x_label"`
	YLabel string  `csv:"y_label"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
}

// Encode writes res to w in the given format.
func Encode(w io.Writer, res *Result, format Format) error {
	var data []byte
	var err error

	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(res)
	case FormatJSON:
		data, err = json.MarshalIndent(res, "", "  ")
		data = append(data, '\n')
	case FormatCSV:
		rows := make([]csvRow, 0)
		for _, s := range res.Series {
			for _, p := range s.Points {
				rows = append(rows, csvRow{Series: s.Name, XLabel: s.XLabel, YLabel: s.YLabel, X: p.X, Y: p.Y})
			}
		}
		data, err = csvutil.Marshal(rows)
	default:
		err = errors.Errorf("unknown export format: %d", int(format))
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s", format)
	}

	_, err = w.Write(data)
	return err
}

// Save writes res to path, in the format selected by the file extension.
func Save(res *Result, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "save result")
	}
	if err = Encode(f, res, format); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "save result")
	}
	logger.Infof("saved %d series of %s to %s", len(res.Series), res.Name, path)
	return nil
}
