package cli

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/signal"
)

func TestSmoothCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeTestFile(t, dir, "trace.csv", "value\n1\n5\n2\n8\n3\n9\n4\n7\n")
	output := filepath.Join(dir, "smooth.json")

	if err := runCommand(t, "smooth", input, "--window-len", "3", "--window", "flat", "-o", output); err != nil {
		t.Fatalf("smooth: %v", err)
	}

	got, err := pkgio.ImportSignal(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want, err := signal.SmoothSlice([]float64{1, 5, 2, 8, 3, 9, 4, 7}, 3, signal.Flat)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("y[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestSmoothCommandCSVOutput(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeTestFile(t, dir, "trace.json", `{"signal": [0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1]}`)
	output := filepath.Join(dir, "trace.csv")

	if err := runCommand(t, "smooth", input, "-o", output, "--no-cache"); err != nil {
		t.Fatalf("smooth: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "value\n") {
		t.Errorf("csv output missing header: %q", data)
	}
}

func TestSmoothCommandNaN(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := writeTestFile(t, dir, "gaps.csv", "value\n1\nNaN\n3\n4\n5\n6\n7\n8\n")
	output := filepath.Join(dir, "gaps-smooth.csv")

	if err := runCommand(t, "smooth", input, "--window-len", "3", "--window", "flat", "-o", output); err != nil {
		t.Fatalf("smooth: %v", err)
	}
	got, err := pkgio.ImportSignal(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("y[0] = %v, want NaN", got[0])
	}
	if math.Abs(got[2]-4) > 1e-12 {
		t.Errorf("y[2] = %v, want 4", got[2])
	}
}

func TestSmoothCommandErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	short := writeTestFile(t, dir, "short.json", `[1, 2, 3]`)
	ok := writeTestFile(t, dir, "ok.json", `[1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]`)

	tests := []struct {
		name string
		args []string
	}{
		{"signal shorter than window", []string{"smooth", short}},
		{"unknown window", []string{"smooth", ok, "--window", "kaiser"}},
		{"missing file", []string{"smooth", filepath.Join(dir, "missing.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runCommand(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFormatSummary(t *testing.T) {
	s := signal.Summary{N: 3, Mean: 2, StdDev: 0.5, Min: 1, Max: 3}
	got := formatSummary(s)
	for _, want := range []string{"mean 2", "std 0.5", "min 1", "max 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatSummary() = %q, missing %q", got, want)
		}
	}
}
