// Package img2sketch converts photographs into pencil sketches.
//
// A Sketcher runs five stages over an image: grayscale, inversion, Gaussian
// blur of the inverted image, a dodge blend of the blur over the grayscale,
// and an optional 3x3 sharpening pass. Its parameters are fixed at
// construction, so one Sketcher may be shared by many goroutines.
package img2sketch

import (
	"fmt"
	"math"

	"github.com/wbrown/img2sketch/imageutil"
)

// Default Sketcher parameters.
const (
	DefaultSigma           = 10.0
	DefaultSharpenStrength = 5
)

// Sketcher holds an immutable pipeline configuration together with the
// kernels derived from it.
type Sketcher struct {
	sigma           float64
	sharpenStrength int
	sharpening      bool

	blurSize    int
	blurWeights []float64
	sharpen     *imageutil.Kernel
}

// SketcherOption is a functional option for configuring a Sketcher.
type SketcherOption func(*Sketcher)

// WithSigma sets the Gaussian blur standard deviation. Small values keep
// fine texture, large values reduce the sketch to major outlines.
func WithSigma(sigma float64) SketcherOption {
	return func(s *Sketcher) {
		s.sigma = sigma
	}
}

// WithSharpenStrength sets the centre weight of the sharpening kernel.
func WithSharpenStrength(strength int) SketcherOption {
	return func(s *Sketcher) {
		s.sharpenStrength = strength
	}
}

// WithSharpening enables or disables the final sharpening stage.
func WithSharpening(enabled bool) SketcherOption {
	return func(s *Sketcher) {
		s.sharpening = enabled
	}
}

// NewSketcher creates a Sketcher with the given options.
// Default values: Sigma=10, SharpenStrength=5, Sharpening=true.
//
// It returns an error wrapping ErrInvalidParameter if sigma is not a
// positive finite number or the sharpen strength is below 4. The strength
// is checked even when sharpening is disabled.
func NewSketcher(opts ...SketcherOption) (*Sketcher, error) {
	s := &Sketcher{
		sigma:           DefaultSigma,
		sharpenStrength: DefaultSharpenStrength,
		sharpening:      true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !(s.sigma > 0) || math.IsInf(s.sigma, 0) {
		return nil, fmt.Errorf("%w: blur sigma must be positive, got %v", ErrInvalidParameter, s.sigma)
	}
	kernel, err := imageutil.Sharpening(s.sharpenStrength)
	if err != nil {
		return nil, err
	}

	s.sharpen = kernel
	s.blurSize = imageutil.BlurKernelSize(s.sigma)
	s.blurWeights = imageutil.GaussianKernel1D(s.blurSize, s.sigma)
	return s, nil
}

// FromStyle creates a sharpening Sketcher with the style's parameters.
func FromStyle(style Style) (*Sketcher, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("%w: unknown style %d", ErrInvalidParameter, int(style))
	}
	return NewSketcher(
		WithSigma(style.Sigma()),
		WithSharpenStrength(style.SharpenStrength()),
		WithSharpening(true),
	)
}

// Sigma returns the blur standard deviation.
func (s *Sketcher) Sigma() float64 { return s.sigma }

// SharpenStrength returns the sharpening kernel's centre weight.
func (s *Sketcher) SharpenStrength() int { return s.sharpenStrength }

// Sharpening reports whether the sharpening stage runs.
func (s *Sketcher) Sharpening() bool { return s.sharpening }

// KernelSize returns the side of the blur window derived from sigma.
func (s *Sketcher) KernelSize() int { return s.blurSize }

func (s *Sketcher) String() string {
	return fmt.Sprintf("Sketcher(sigma=%g, sharpen_strength=%d, sharpening=%t)",
		s.sigma, s.sharpenStrength, s.sharpening)
}

// Trace holds the output of every pipeline stage.
type Trace struct {
	Grayscale           *imageutil.GrayImage
	Inverted            *imageutil.GrayImage
	Blurred             *imageutil.GrayImage
	SketchBeforeSharpen *imageutil.GrayImage
	FinalSketch         *imageutil.GrayImage
}

// Apply converts img into a single-channel sketch of the same size. The
// input is never modified. It returns an error wrapping ErrInvalidInput if
// img fails Buffer.Validate.
func (s *Sketcher) Apply(img *imageutil.Buffer) (*imageutil.GrayImage, error) {
	trace, err := s.ApplyWithTrace(img)
	if err != nil {
		return nil, err
	}
	return trace.FinalSketch, nil
}

// ApplyWithTrace runs the same pipeline as Apply and returns every stage.
// When sharpening is disabled FinalSketch is a copy of SketchBeforeSharpen.
func (s *Sketcher) ApplyWithTrace(img *imageutil.Buffer) (*Trace, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	t := &Trace{}
	t.Grayscale = imageutil.ToGrayscale(img)
	t.Inverted = imageutil.Invert(t.Grayscale)
	t.Blurred = imageutil.ConvolveSeparable(t.Inverted, s.blurWeights)
	t.SketchBeforeSharpen = DodgeBlend(t.Blurred, t.Grayscale)

	if s.sharpening {
		t.FinalSketch = imageutil.ConvolveGray(t.SketchBeforeSharpen, s.sharpen)
	} else {
		t.FinalSketch = t.SketchBeforeSharpen.Clone()
	}
	return t, nil
}
