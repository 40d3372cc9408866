package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/perclearn"
	"github.com/gogpu/perclearn/internal/dataset"
)

func newDatasetCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Augment a dataset of square images",
		Long: `Place every image of a dataset on its own noise background, at an offset
picked from --offsets, optionally rotated. Input and output are either a CSV
file (one flattened image per row) or a directory of images.

With the default background of twice the image side, rows of N pixels
become rows of 4N pixels.`,
		Example: `  perclearn dataset --input mnist.csv --labeled --output augmented.csv
  perclearn dataset --input digits/ --output framed/ --offsets "0,0;14,14;28,28" --rotate
  perclearn dataset --input mnist.csv --output turned.csv --quarter-turns 1 --seed 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			flags := cmd.Flags()

			if flags.Changed("offsets") {
				s, _ := flags.GetString("offsets")
				offsets, err := parseOffsets(s)
				if err != nil {
					return err
				}
				cfg.Dataset.Offsets = offsets
			}
			if flags.Changed("rotate") {
				cfg.Dataset.Rotate, _ = flags.GetBool("rotate")
			}
			if flags.Changed("quarter-turns") {
				k, _ := flags.GetInt("quarter-turns")
				cfg.Dataset.QuarterTurns = &k
			}
			if flags.Changed("background-size") {
				cfg.Dataset.BackgroundSize, _ = flags.GetInt("background-size")
			}
			if flags.Changed("labeled") {
				cfg.Dataset.Labeled, _ = flags.GetBool("labeled")
			}
			if flags.Changed("workers") {
				cfg.Dataset.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("beta") {
				cfg.Noise.Beta, _ = flags.GetFloat64("beta")
			}
			if flags.Changed("format") {
				cfg.Output.Format, _ = flags.GetString("format")
			}
			if flags.Changed("upscale") {
				cfg.Output.Upscale, _ = flags.GetInt("upscale")
			}

			set, err := readSet(input, cfg.Dataset.Labeled)
			if err != nil {
				return err
			}
			logger.Info("read dataset", "path", input, "items", printer.Sprint(set.Rows()))

			opts := []perclearn.DatasetOption{
				perclearn.WithOffsets(cfg.Dataset.Points()...),
				perclearn.WithBeta(cfg.Noise.Beta),
				perclearn.WithBackgroundSize(cfg.Dataset.BackgroundSize),
				perclearn.WithMaskOptions(cfg.MaskOptions()...),
				perclearn.WithWorkers(cfg.Dataset.Workers),
				perclearn.WithContext(cmd.Context()),
			}
			switch {
			case cfg.Dataset.QuarterTurns != nil:
				opts = append(opts, perclearn.WithQuarterTurns(*cfg.Dataset.QuarterTurns))
			case cfg.Dataset.Rotate:
				opts = append(opts, perclearn.WithRotation())
			}

			p := newProgress(logger)
			out, err := perclearn.BuildDataset(newRNG(cmd, cfg), set.Data, opts...)
			if err != nil {
				return err
			}
			p.done(printer.Sprintf("Augmented %d items", set.Rows()))

			if err := cmd.Context().Err(); err != nil {
				return err
			}

			if err := writeSet(output, &dataset.Set{Data: out, Labels: set.Labels}, cfg.Output); err != nil {
				return err
			}
			logger.Info("wrote dataset", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file or image directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file or image directory")
	cmd.Flags().String("offsets", "0,0", `candidate offsets as "x,y;x,y;..."`)
	cmd.Flags().Bool("rotate", false, "rotate each image by a random whole-degree angle")
	cmd.Flags().Int("quarter-turns", 0, "rotate each image by k*90 degrees instead")
	cmd.Flags().Int("background-size", 0, "background side length (default: twice the image side)")
	cmd.Flags().Bool("labeled", false, "CSV rows start with a label")
	cmd.Flags().Int("workers", 1, "augment items on this many goroutines")
	cmd.Flags().Float64("beta", perclearn.DefaultBeta, "spectral exponent of the backgrounds")
	cmd.Flags().String("format", "png", "image format for directory output (png, tiff)")
	cmd.Flags().Int("upscale", 1, "enlarge written images by this factor")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	addSeedFlag(cmd)

	return cmd
}

// isCSV reports whether path names a CSV file rather than an image directory.
func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func readSet(path string, labeled bool) (*dataset.Set, error) {
	if !isCSV(path) {
		return dataset.ReadImages(path)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cli: open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return dataset.ReadCSV(f, labeled)
}

func writeSet(path string, set *dataset.Set, out OutputConfig) error {
	if !isCSV(path) {
		return dataset.WriteImages(path, set, "."+strings.TrimPrefix(out.Format, "."), out.Upscale)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("cli: create dataset: %w", err)
	}
	if err := dataset.WriteCSV(f, set); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
