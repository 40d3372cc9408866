package cli

import (
	"image"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/perclearn"
	intImage "github.com/gogpu/perclearn/internal/image"
)

func newComposeCmd() *cobra.Command {
	var (
		input      string
		background string
		output     string
		x, y       int
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Blend one image onto a background",
		Long: `Blend an image onto a background through a circular mask whose exterior
fades into the background. Without --background a pink-noise background twice
the size of the input is generated.`,
		Example: `  perclearn compose --input digit.png -o framed.png
  perclearn compose --input digit.png --x 14 --y 14 --radius 0 -o faded.png
  perclearn compose --input digit.png --background scene.png -o out.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			flags := cmd.Flags()

			if flags.Changed("radius") {
				r, _ := flags.GetFloat64("radius")
				cfg.Composite.Radius = &r
			}
			if flags.Changed("center-x") && flags.Changed("center-y") {
				cx, _ := flags.GetFloat64("center-x")
				cy, _ := flags.GetFloat64("center-y")
				cfg.Composite.CenterX, cfg.Composite.CenterY = &cx, &cy
			}
			if flags.Changed("beta") {
				cfg.Noise.Beta, _ = flags.GetFloat64("beta")
			}
			if flags.Changed("upscale") {
				cfg.Output.Upscale, _ = flags.GetInt("upscale")
			}

			fg, err := intImage.Load(input)
			if err != nil {
				return err
			}

			var bg *mat.Dense
			if background != "" {
				if bg, err = intImage.Load(background); err != nil {
					return err
				}
			} else {
				rows, cols := fg.Dims()
				bg = perclearn.Scale255(perclearn.Noise(newRNG(cmd, cfg), 2*rows, 2*cols, cfg.Noise.Beta))
			}

			frame, err := perclearn.Composite(fg, bg, image.Pt(x, y), cfg.MaskOptions()...)
			if err != nil {
				return err
			}

			if err := intImage.Save(output, intImage.Upscale(intImage.ToGray(frame), cfg.Output.Upscale)); err != nil {
				return err
			}
			logger.Info("wrote composition", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "foreground image")
	cmd.Flags().StringVarP(&background, "background", "b", "", "background image (default: generated noise)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (.png, .tiff)")
	cmd.Flags().IntVar(&x, "x", 0, "column offset of the foreground")
	cmd.Flags().IntVar(&y, "y", 0, "row offset of the foreground")
	cmd.Flags().Float64("radius", 0, "disk radius (default: distance from center to nearest edge)")
	cmd.Flags().Float64("center-x", 0, "disk center column (with --center-y)")
	cmd.Flags().Float64("center-y", 0, "disk center row (with --center-x)")
	cmd.Flags().Float64("beta", perclearn.DefaultBeta, "spectral exponent of generated backgrounds")
	cmd.Flags().Int("upscale", 1, "enlarge the written image by this factor")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	addSeedFlag(cmd)

	return cmd
}
