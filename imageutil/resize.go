package imageutil

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Default bounds for ResizeToFit.
const (
	DefaultMaxWidth  = 1920
	DefaultMaxHeight = 1080
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea averages every source pixel that falls inside a
	// destination pixel. Equivalent to OpenCV's INTER_AREA when shrinking.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR.
	InterpolationLinear

	// InterpolationCubic uses Catmull-Rom, suited to upscaling.
	InterpolationCubic

	// InterpolationNearest uses nearest-neighbor interpolation.
	InterpolationNearest
)

// areaKernel is a box filter. x/image/draw widens the support by the
// downscale ratio and normalizes the weights, which turns it into an area
// average.
var areaKernel = &draw.Kernel{
	Support: 0.5,
	At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t <= 0.5 {
			return 1
		}
		return 0
	},
}

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationArea:
		return areaKernel
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationCubic:
		return draw.CatmullRom
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return areaKernel
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	scalerFor(interp).Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	scalerFor(interp).Scale(dst.Gray, dst.Bounds(), img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// FitSize returns the largest size with the aspect ratio of width x height
// that fits inside maxWidth x maxHeight. Sizes already inside the bounds are
// returned unchanged.
func FitSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	scale := math.Min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	w := max(int(float64(width)*scale), 1)
	h := max(int(float64(height)*scale), 1)
	return w, h
}

// ResizeToFit shrinks buf to fit inside maxWidth x maxHeight, keeping its
// aspect ratio and channel count. A buffer already within bounds is returned
// as is.
func ResizeToFit(buf *Buffer, maxWidth, maxHeight int) *Buffer {
	w, h := FitSize(buf.Width, buf.Height, maxWidth, maxHeight)
	if w == buf.Width && h == buf.Height {
		return buf
	}

	if buf.Channels == 1 {
		src := &GrayImage{Gray: &image.Gray{
			Pix:    buf.Pix,
			Stride: buf.Width,
			Rect:   image.Rect(0, 0, buf.Width, buf.Height),
		}}
		return BufferFromGray(ResizeGray(src, w, h, InterpolationArea))
	}
	return BufferFromRGBA(Resize(buf.RGBA(), w, h, InterpolationArea))
}
