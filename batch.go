package img2sketch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/wbrown/img2sketch/imageutil"
)

// DefaultFormats are the extensions FindImages matches when none are given.
var DefaultFormats = []string{"jpg", "jpeg", "png", "bmp"}

// Loader reads an image from a path.
type Loader interface {
	Load(path string) (*imageutil.Buffer, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*imageutil.Buffer, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (*imageutil.Buffer, error) { return f(path) }

// Saver persists an image to a path.
type Saver interface {
	Save(img image.Image, path string) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(img image.Image, path string) error

// Save calls f(img, path).
func (f SaverFunc) Save(img image.Image, path string) error { return f(img, path) }

// Runner sketches many images with one shared Sketcher.
type Runner struct {
	sketcher  *Sketcher
	workers   int
	logger    *log.Logger
	loader    Loader
	saver     Saver
	maxWidth  int
	maxHeight int
	ext       string
}

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets the number of images processed at once. Values below 1
// mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithLogger sets the logger for per-item progress and failures.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithLoader replaces imageutil.LoadImage.
func WithLoader(l Loader) RunnerOption {
	return func(r *Runner) {
		r.loader = l
	}
}

// WithSaver replaces imageutil.SaveImage.
func WithSaver(s Saver) RunnerOption {
	return func(r *Runner) {
		r.saver = s
	}
}

// WithResize shrinks each input to fit maxWidth x maxHeight before
// sketching. Zero disables resizing.
func WithResize(maxWidth, maxHeight int) RunnerOption {
	return func(r *Runner) {
		r.maxWidth = maxWidth
		r.maxHeight = maxHeight
	}
}

// WithOutputFormat sets the output extension, e.g. ".png" or "jpg".
func WithOutputFormat(ext string) RunnerOption {
	return func(r *Runner) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.ext = ext
	}
}

// NewRunner creates a Runner. Default values: GOMAXPROCS workers,
// log.Default(), imageutil.LoadImage/SaveImage, no resizing, ".png" output.
func NewRunner(sk *Sketcher, opts ...RunnerOption) *Runner {
	r := &Runner{
		sketcher: sk,
		logger:   log.Default(),
		loader:   LoaderFunc(imageutil.LoadImage),
		saver:    SaverFunc(imageutil.SaveImage),
		ext:      ".png",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	if r.ext == "" {
		r.ext = ".png"
	}
	return r
}

// Failure records one input that could not be sketched.
type Failure struct {
	Path string
	Err  error
}

// Report summarizes a batch. Outputs and Failures follow input order.
// Skipped counts inputs never started because the context was cancelled.
type Report struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Outputs   []string
	Failures  []Failure
	Elapsed   time.Duration
}

type itemResult struct {
	started bool
	output  string
	err     error
}

// Run sketches every path into outDir as <stem>_sketch<ext>. A failing item
// is logged and counted but never stops its siblings. The returned error is
// non-nil only when ctx is cancelled; the report then covers the items that
// had already started.
func (r *Runner) Run(ctx context.Context, paths []string, outDir string) (*Report, error) {
	start := time.Now()
	results := make([]itemResult, len(paths))
	var finished atomic.Int64

	var g errgroup.Group
	g.SetLimit(r.workers)

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			out, err := r.process(path, outDir)
			results[i] = itemResult{started: true, output: out, err: err}

			n := finished.Add(1)
			if err != nil {
				r.logger.Error("failed to sketch image", "path", path, "err", err)
			} else {
				r.logger.Debug("sketched image", "path", path, "output", out,
					"progress", fmt.Sprintf("%d/%d", n, len(paths)))
			}
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{Total: len(paths)}
	for i, res := range results {
		switch {
		case !res.started:
			report.Skipped++
		case res.err != nil:
			report.Failed++
			report.Failures = append(report.Failures, Failure{Path: paths[i], Err: res.err})
		default:
			report.Succeeded++
			report.Outputs = append(report.Outputs, res.output)
		}
	}
	report.Elapsed = time.Since(start)

	r.logger.Info("batch complete",
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"elapsed", report.Elapsed.Round(time.Millisecond))

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (r *Runner) process(path, outDir string) (string, error) {
	img, err := r.loader.Load(path)
	if err != nil {
		return "", err
	}
	if err := img.Validate(); err != nil {
		return "", err
	}
	if r.maxWidth > 0 && r.maxHeight > 0 {
		img = imageutil.ResizeToFit(img, r.maxWidth, r.maxHeight)
	}

	sketch, err := r.sketcher.Apply(img)
	if err != nil {
		return "", err
	}

	out := OutputPath(outDir, path, r.ext)
	if err := r.saver.Save(sketch.Gray, out); err != nil {
		return "", err
	}
	return out, nil
}

// OutputPath returns outDir/<stem>_sketch<ext> for an input path.
func OutputPath(outDir, path, ext string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+"_sketch"+ext)
}

// FindImages lists the regular files directly inside dir whose extension
// matches one of formats, ignoring case. Formats may be given with or
// without a leading dot; an empty list means DefaultFormats. Results are
// sorted by name.
func FindImages(dir string, formats []string) ([]string, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	want := make(map[string]bool, len(formats))
	for _, f := range formats {
		want[strings.ToLower(strings.TrimPrefix(f, "."))] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name()), "."))
		if want[ext] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
