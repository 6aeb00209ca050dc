package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2sketch"
	"github.com/wbrown/img2sketch/imageutil"
)

// convertOpts holds the flags of the convert command.
type convertOpts struct {
	output    string  // sketch path; defaults to <stem>_sketch<ext> next to the input
	style     string  // preset name, exclusive with sigma/sharpen
	sigma     float64 // blur sigma
	sharpen   int     // sharpening centre weight
	noSharpen bool    // skip the sharpening stage
	compare   bool    // also write <stem>_comparison.png
	allStyles bool    // write every preset and a grid instead of one sketch
	resize    bool    // shrink the input to the configured bounds first
	config    string  // TOML config file
}

func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Convert one image into a pencil sketch",
		Example: `  sketchify convert photo.jpg
  sketchify convert photo.jpg -o sketch.png --style bold
  sketchify convert photo.jpg --sigma 15 --sharpen 6 --compare
  sketchify convert photo.jpg --all-styles`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			applyConvertFlags(cmd, &opts, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runConvert(cmd, args[0], opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default: <input>_sketch<ext>)")
	cmd.Flags().StringVar(&opts.style, "style", "", "style preset: "+strings.Join(img2sketch.StyleNames(), ", "))
	cmd.Flags().Float64Var(&opts.sigma, "sigma", img2sketch.DefaultSigma, "Gaussian blur sigma")
	cmd.Flags().IntVar(&opts.sharpen, "sharpen", img2sketch.DefaultSharpenStrength, "sharpening strength (>= 4)")
	cmd.Flags().BoolVar(&opts.noSharpen, "no-sharpen", false, "disable the sharpening stage")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "also write a side-by-side comparison")
	cmd.Flags().BoolVar(&opts.allStyles, "all-styles", false, "write every style preset and a style grid")
	cmd.Flags().BoolVar(&opts.resize, "resize", false, "shrink large inputs to the configured bounds")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML configuration file")

	cmd.MarkFlagsMutuallyExclusive("style", "sigma")
	cmd.MarkFlagsMutuallyExclusive("style", "sharpen")

	return cmd
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (*img2sketch.Config, error) {
	if path == "" {
		return img2sketch.DefaultConfig(), nil
	}
	return img2sketch.LoadConfig(path)
}

// applyConvertFlags overlays explicitly set flags on cfg.
func applyConvertFlags(cmd *cobra.Command, opts *convertOpts, cfg *img2sketch.Config) {
	flags := cmd.Flags()
	if flags.Changed("style") {
		cfg.Sketch.Style = opts.style
	}
	if flags.Changed("sigma") {
		cfg.Sketch.Style = ""
		cfg.Sketch.Sigma = opts.sigma
	}
	if flags.Changed("sharpen") {
		cfg.Sketch.Style = ""
		cfg.Sketch.Sharpen = opts.sharpen
	}
	if opts.noSharpen {
		cfg.Sketch.Sharpening = false
	}
}

func runConvert(cmd *cobra.Command, input string, opts convertOpts, cfg *img2sketch.Config) error {
	logger := loggerFromContext(cmd.Context())
	out := printer{w: cmd.OutOrStdout()}
	prog := newProgress(logger)

	logger.Info("Loading image", "path", input)
	img, err := imageutil.LoadImage(input)
	if err != nil {
		return err
	}
	if opts.resize {
		img = resizeInput(logger, img, cfg)
	}

	if opts.allStyles {
		return writeAllStyles(out, input, img, prog)
	}

	sk, err := cfg.Sketcher()
	if err != nil {
		return err
	}
	logger.Debug("Sketching", "sketcher", sk.String(), "kernel", sk.KernelSize())

	sketch, err := sk.Apply(img)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = defaultOutputPath(input)
	}

	if opts.compare {
		comparison, err := imageutil.CreateComparison(img, sketch, [2]string{"Original", "Pencil Sketch"})
		if err != nil {
			return err
		}
		comparePath := siblingPath(input, "comparison", ".png")
		if err := imageutil.SaveImage(comparison.RGBA, comparePath); err != nil {
			return err
		}
		out.file(comparePath)
	}

	if err := imageutil.SaveGrayImage(sketch, output); err != nil {
		return err
	}
	prog.done("Sketched " + input)

	out.success("Generated pencil sketch")
	out.keyValue("Input", input)
	out.keyValue("Output", output)
	out.keyValue("Settings", sk.String())
	return nil
}

func resizeInput(logger *log.Logger, img *imageutil.Buffer, cfg *img2sketch.Config) *imageutil.Buffer {
	resized := imageutil.ResizeToFit(img, cfg.Resize.MaxWidth, cfg.Resize.MaxHeight)
	if resized != img {
		logger.Debug("Resized input",
			"from", fmt.Sprintf("%dx%d", img.Width, img.Height),
			"to", fmt.Sprintf("%dx%d", resized.Width, resized.Height))
	}
	return resized
}

// writeAllStyles saves <stem>_<style>.png for every preset plus
// <stem>_styles_grid.png next to the input.
func writeAllStyles(out printer, input string, img *imageutil.Buffer, prog *progress) error {
	variations, err := img2sketch.GenerateStyleVariations(img)
	if err != nil {
		return err
	}

	var saveErr error
	variations.Iterate(func(name string, sketch *imageutil.GrayImage) {
		if saveErr != nil {
			return
		}
		path := siblingPath(input, strings.ToLower(name), ".png")
		if saveErr = imageutil.SaveGrayImage(sketch, path); saveErr == nil {
			out.file(path)
		}
	})
	if saveErr != nil {
		return saveErr
	}

	grid, err := img2sketch.StyleGrid(img, variations)
	if err != nil {
		return err
	}
	gridPath := siblingPath(input, "styles_grid", ".png")
	if err := imageutil.SaveImage(grid.RGBA, gridPath); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d style variations", variations.Len()))

	out.success("Saved style grid %s", gridPath)
	return nil
}
