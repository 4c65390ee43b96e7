package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/chainviz/pkg/array"
	"github.com/matzehuels/chainviz/pkg/errors"
)

type arraysJSON struct {
	Arrays []*array.Dense `json:"arrays"`
}

// ReadArrays decodes a set of arrays. The input is either a bare JSON list of
// {"shape": [...], "data": [...]} objects or an object with an "arrays" list.
func ReadArrays(r io.Reader) ([]*array.Dense, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	var arrays []*array.Dense
	if len(raw) > 0 && raw[0] == '[' {
		err = json.Unmarshal(raw, &arrays)
	} else {
		var obj arraysJSON
		err = json.Unmarshal(raw, &obj)
		arrays = obj.Arrays
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode arrays")
	}
	for i, a := range arrays {
		if a == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "array %d is null", i)
		}
	}
	return arrays, nil
}

// ImportArrays reads an array set from a JSON file.
func ImportArrays(path string) ([]*array.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadArrays(f)
}

// WriteArrays encodes arrays as {"arrays": [...]}.
func WriteArrays(arrays []*array.Dense, w io.Writer) error {
	if arrays == nil {
		arrays = []*array.Dense{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(arraysJSON{Arrays: arrays}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportArrays writes arrays to a JSON file at path.
func ExportArrays(arrays []*array.Dense, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteArrays(arrays, f)
}
