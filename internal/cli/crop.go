package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chainviz/pkg/array"
	pkgio "github.com/matzehuels/chainviz/pkg/io"
)

// cropCommand creates the crop command.
func (c *CLI) cropCommand() *cobra.Command {
	var (
		output string
		axis   int
	)

	cmd := &cobra.Command{
		Use:   "crop <arrays.json>",
		Short: "Crop arrays to their shortest extent along an axis",
		Long: `Crop a list of arrays so they all share the smallest extent along one axis.

The input is a JSON list of arrays, or an object with an "arrays" field. Each
array is {"shape": [...], "data": [...]} in row-major order. Leading entries
are kept. Without -o the result is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrop(cmd.Context(), args[0], output, axis)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().IntVar(&axis, "axis", array.DefaultAxis, "axis to crop along")

	return cmd
}

// runCrop crops the arrays in input and writes them to output or stdout.
func runCrop(ctx context.Context, input, output string, axis int) error {
	logger := loggerFromContext(ctx)

	arrays, err := pkgio.ImportArrays(input)
	if err != nil {
		return err
	}
	cropped, err := array.CropToMinSize(arrays, axis)
	if err != nil {
		return err
	}
	logger.Debug("cropped arrays", "count", len(cropped), "axis", axis, "extent", cropped[0].Dim(axis))

	if output == "" {
		return pkgio.WriteArrays(cropped, os.Stdout)
	}
	if err := pkgio.ExportArrays(cropped, output); err != nil {
		return err
	}

	printSuccess("Cropped %d arrays from %s", len(cropped), filepath.Base(input))
	printFile(output)
	for i, a := range cropped {
		printKeyValue(fmt.Sprintf("array %d", i), formatShape(a.Shape()))
	}
	return nil
}

// formatShape renders a shape as "3x4x2".
func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "x")
}
