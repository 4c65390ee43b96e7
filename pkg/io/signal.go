package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// Format names a signal file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatFor picks the encoding from a file extension. Unknown extensions
// fall back to JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

type signalJSON struct {
	Signal []float64 `json:"signal"`
}

// ReadSignal decodes a 1-D signal. JSON input is either a bare array of
// numbers or an object with a "signal" array. CSV input takes the first
// column of every record; a first line that does not parse as a number is
// treated as a header.
func ReadSignal(r io.Reader, format Format) ([]float64, error) {
	switch format {
	case FormatJSON:
		return readSignalJSON(r)
	case FormatCSV:
		return readSignalCSV(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown signal format %q", format)
	}
}

func readSignalJSON(r io.Reader) ([]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 && raw[0] == '[' {
		var x []float64
		if err := json.Unmarshal(raw, &x); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode signal")
		}
		return x, nil
	}

	var obj signalJSON
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode signal")
	}
	if obj.Signal == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "signal object has no \"signal\" field")
	}
	return obj.Signal, nil
}

func readSignalCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var x []float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode csv")
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: %q is not a number", line, rec[0])
		}
		x = append(x, v)
	}
	return x, nil
}

// ImportSignal reads a signal file, choosing the format by extension.
func ImportSignal(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSignal(f, FormatFor(path))
}

// WriteSignal encodes x. JSON output is {"signal": [...]}; CSV output is one
// value per line under a "value" header. JSON has no NaN or infinity, so such
// samples are an INVALID_INPUT error there; CSV writes them as "NaN", "+Inf"
// and "-Inf".
func WriteSignal(x []float64, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		for i, v := range x {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(errors.ErrCodeInvalidInput,
					"sample %d is %v, which JSON cannot encode; write CSV instead", i, v)
			}
		}
		if x == nil {
			x = []float64{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(signalJSON{Signal: x}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"value"}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		for _, v := range x {
			if err := cw.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown signal format %q", format)
	}
}

// ExportSignal writes x to path, choosing the format by extension.
func ExportSignal(x []float64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSignal(x, f, FormatFor(path))
}
