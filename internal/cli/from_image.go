package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/iroha/internal/backend"
	"github.com/jmylchreest/iroha/internal/image"
)

type fromImageOptions struct {
	outputOptions
	quality   int
	stride    int
	numColors int
}

func newFromImageCmd(a *app) *cobra.Command {
	opts := &fromImageOptions{}

	cmd := &cobra.Command{
		Use:   "from-image <path|url|directory>",
		Short: "Generate a colour scheme from an image",
		Long: `Generate a colour scheme from the dominant colour of an image.

The image may be a local file, an HTTPS URL, an .xz-compressed image, or a
directory, in which case one supported image is picked at random.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Print the light scheme as JSON
  iroha from-image wallpaper.jpg

  # Sample every 4th pixel and use the dark scheme
  iroha from-image --quality 97 --dark wallpaper.png

  # Render a built-in template to a file
  iroha from-image -i builtin:kitty -o ~/.config/kitty/colors.conf wallpaper.jpg

  # Render every output listed in a template map
  iroha from-image -m ~/.config/iroha/templates.yaml ~/Pictures/wallpapers`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFromImage(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.quality, "quality", "q", 0, "extraction quality from 1 (fastest) to 100 (every pixel) (default 100 or $IROHA_QUALITY)")
	cmd.Flags().IntVar(&opts.stride, "stride", 0, "sample every Nth pixel; overrides --quality")
	cmd.Flags().IntVarP(&opts.numColors, "num-colors", "n", 0, "number of colours to quantize to (default 128 or $IROHA_NUM_COLORS)")
	opts.register(cmd.Flags(), "i")

	return cmd
}

// backendConfig resolves sampling options from flags and configuration.
func (o *fromImageOptions) backendConfig(a *app) (backend.Config, error) {
	cfg := backend.Config{
		NumColors: a.cfg.NumColors,
	}
	if o.numColors != 0 {
		if o.numColors < 1 {
			return cfg, fmt.Errorf("--num-colors must be positive, got %d", o.numColors)
		}
		cfg.NumColors = o.numColors
	}

	if o.stride != 0 {
		if o.stride < 1 {
			return cfg, fmt.Errorf("--stride must be positive, got %d", o.stride)
		}
		cfg.Stride = o.stride
		return cfg, nil
	}

	quality := a.cfg.Quality
	if o.quality != 0 {
		quality = o.quality
	}
	stride, err := backend.StrideFromQuality(quality)
	if err != nil {
		return cfg, err
	}
	cfg.Stride = stride
	return cfg, nil
}

func runFromImage(cmd *cobra.Command, a *app, opts *fromImageOptions, source string) error {
	cfg, err := opts.backendConfig(a)
	if err != nil {
		return err
	}

	path := source
	if !image.IsURL(source) {
		path, err = image.ResolveImagePath(source)
		if err != nil {
			return err
		}
		if path != source {
			a.logger.Info("selected image from directory", "path", path)
		}
	}

	b, err := a.resolveBackend(opts.backend)
	if err != nil {
		return err
	}
	b.Configure(cfg)

	a.logger.Debug("generating from image", "path", path, "stride", cfg.Stride, "num_colors", cfg.NumColors)
	schemes, err := b.FromImage(cmd.Context(), opts.theme(), path)
	if err != nil {
		return err
	}
	return a.writeSchemes(cmd, b, schemes, &opts.outputOptions)
}
