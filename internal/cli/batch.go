package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbrown/img2sketch"
)

// batchOpts holds the flags of the batch command.
type batchOpts struct {
	output  string // output directory
	style   string // preset applied to every image
	formats string // comma separated extensions
	workers int    // concurrent images, 0 = GOMAXPROCS
	resize  bool   // shrink inputs to the configured bounds first
	config  string // TOML config file
}

func newBatchCmd() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Sketch every image in a directory",
		Example: `  sketchify batch photos/
  sketchify batch photos/ --output sketches --style light --workers 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			applyBatchFlags(cmd, &opts, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runBatch(cmd, args[0], opts, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.output, "output", "results", "output directory")
	cmd.Flags().StringVar(&opts.style, "style", "medium", "style preset for every image")
	cmd.Flags().StringVar(&opts.formats, "formats", "jpg,jpeg,png,bmp", "comma separated extensions to process")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "images processed concurrently (0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.resize, "resize", false, "shrink large inputs to the configured bounds")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML configuration file")

	return cmd
}

// applyBatchFlags overlays explicitly set flags on cfg.
func applyBatchFlags(cmd *cobra.Command, opts *batchOpts, cfg *img2sketch.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Batch.Output = opts.output
	}
	if flags.Changed("style") {
		cfg.Batch.Style = opts.style
	}
	if flags.Changed("formats") {
		cfg.Batch.Formats = parseFormats(opts.formats)
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = opts.workers
	}
}

func runBatch(cmd *cobra.Command, dir string, opts batchOpts, cfg *img2sketch.Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := printer{w: cmd.OutOrStdout()}

	paths, err := img2sketch.FindImages(dir, cfg.Batch.Formats)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		out.warning("No images found in %s", dir)
		return nil
	}
	out.info("Found %d images", len(paths))

	sk, err := cfg.BatchSketcher()
	if err != nil {
		return err
	}
	logger.Debug("Batch settings", "sketcher", sk.String(), "workers", cfg.Batch.Workers)

	runnerOpts := []img2sketch.RunnerOption{
		img2sketch.WithWorkers(cfg.Batch.Workers),
		img2sketch.WithLogger(logger),
	}
	if opts.resize {
		runnerOpts = append(runnerOpts, img2sketch.WithResize(cfg.Resize.MaxWidth, cfg.Resize.MaxHeight))
	}

	report, err := img2sketch.NewRunner(sk, runnerOpts...).Run(ctx, paths, cfg.Batch.Output)
	printReport(out, report, cfg.Batch.Output)
	if err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d images failed", report.Failed, report.Total)
	}
	return nil
}

func printReport(out printer, report *img2sketch.Report, outDir string) {
	if report.Failed == 0 && report.Skipped == 0 {
		out.success("Batch processing complete")
	} else {
		out.failure("Batch processing finished with problems")
	}
	out.count("Succeeded", report.Succeeded)
	out.count("Failed", report.Failed)
	if report.Skipped > 0 {
		out.count("Skipped", report.Skipped)
	}
	for _, f := range report.Failures {
		out.detail("%s: %v", f.Path, f.Err)
	}
	out.keyValue("Results", outDir)
}
