package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/perclearn"
	intImage "github.com/gogpu/perclearn/internal/image"
)

func newNoiseCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Write a 1/f noise field as an image",
		Long: `Generate a 1/f spatial noise field, rescale it to [0, 255] and write it
as a grayscale PNG or TIFF. beta = 0 gives white noise, -1 pink, -2 Brownian.`,
		Example: `  perclearn noise -o pink.png
  perclearn noise --rows 128 --cols 128 --beta -2 --seed 7 -o brown.tiff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			flags := cmd.Flags()

			if flags.Changed("rows") {
				cfg.Noise.Rows, _ = flags.GetInt("rows")
			}
			if flags.Changed("cols") {
				cfg.Noise.Cols, _ = flags.GetInt("cols")
			}
			if flags.Changed("beta") {
				cfg.Noise.Beta, _ = flags.GetFloat64("beta")
			}
			if flags.Changed("upscale") {
				cfg.Output.Upscale, _ = flags.GetInt("upscale")
			}

			rng := newRNG(cmd, cfg)
			field := perclearn.Scale255(perclearn.Noise(rng, cfg.Noise.Rows, cfg.Noise.Cols, cfg.Noise.Beta))
			logger.Debug("noise generated",
				"rows", cfg.Noise.Rows, "cols", cfg.Noise.Cols, "beta", cfg.Noise.Beta,
				"fractal_dimension", perclearn.FractalDimension(cfg.Noise.Beta))

			img := intImage.Upscale(intImage.ToGray(field), cfg.Output.Upscale)
			if err := intImage.Save(output, img); err != nil {
				return err
			}
			logger.Info("wrote noise", "path", output)
			return nil
		},
	}

	cmd.Flags().Int("rows", perclearn.DefaultNoiseSize, "field height")
	cmd.Flags().Int("cols", perclearn.DefaultNoiseSize, "field width")
	cmd.Flags().Float64("beta", perclearn.DefaultBeta, "spectral exponent")
	cmd.Flags().Int("upscale", 1, "enlarge the written image by this factor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (.png, .tiff)")
	_ = cmd.MarkFlagRequired("output")
	addSeedFlag(cmd)

	return cmd
}
