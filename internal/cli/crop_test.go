package cli

import (
	"path/filepath"
	"testing"

	pkgio "github.com/matzehuels/chainviz/pkg/io"
)

func TestCropCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeTestFile(t, dir, "arrays.json", `{"arrays": [
		{"shape": [4], "data": [1, 2, 3, 4]},
		{"shape": [2], "data": [5, 6]},
		{"shape": [3], "data": [7, 8, 9]}
	]}`)
	output := filepath.Join(dir, "cropped.json")

	if err := runCommand(t, "crop", input, "-o", output); err != nil {
		t.Fatalf("crop: %v", err)
	}

	arrays, err := pkgio.ImportArrays(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(arrays) != 3 {
		t.Fatalf("got %d arrays, want 3", len(arrays))
	}
	for i, a := range arrays {
		if a.Dim(0) != 2 {
			t.Errorf("array %d length = %d, want 2", i, a.Dim(0))
		}
	}
	if arrays[0].At(1) != 2 || arrays[2].At(0) != 7 {
		t.Error("cropping should keep leading entries")
	}
}

func TestCropCommandAxis(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeTestFile(t, dir, "arrays.json", `[
		{"shape": [2, 3], "data": [1, 2, 3, 4, 5, 6]},
		{"shape": [2, 2], "data": [7, 8, 9, 10]}
	]`)
	output := filepath.Join(dir, "cropped.json")

	if err := runCommand(t, "crop", input, "--axis", "1", "-o", output); err != nil {
		t.Fatalf("crop: %v", err)
	}
	arrays, err := pkgio.ImportArrays(output)
	if err != nil {
		t.Fatal(err)
	}
	if got := formatShape(arrays[0].Shape()); got != "2x2" {
		t.Errorf("shape = %s, want 2x2", got)
	}
	if arrays[0].At(1, 1) != 5 {
		t.Errorf("At(1,1) = %g, want 5", arrays[0].At(1, 1))
	}
}

func TestCropCommandErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeTestFile(t, dir, "arrays.json", `[{"shape": [2], "data": [1, 2]}]`)
	empty := writeTestFile(t, dir, "empty.json", `[]`)

	tests := []struct {
		name string
		args []string
	}{
		{"axis out of range", []string{"crop", input, "--axis", "1"}},
		{"empty list", []string{"crop", empty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runCommand(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
