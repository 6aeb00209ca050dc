package imageutil

import "math"

// Kernel represents a convolution kernel. Values is indexed [row][column].
// Kernels are shared read-only once built.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// At returns the weight at column x, row y.
func (k *Kernel) At(x, y int) float64 {
	return k.Values[y][x]
}

// Sum returns the total of all weights.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, row := range k.Values {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// ConvolveGray applies a kernel to a grayscale image. Border pixels are
// handled by replicating edge values, so the output has the input's size.
// Results are rounded and saturated to [0, 255].
func ConvolveGray(img *GrayImage, kernel *Kernel) *GrayImage {
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)

	halfKW := kernel.Width / 2
	halfKH := kernel.Height / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64

			for ky := 0; ky < kernel.Height; ky++ {
				sy := clampInt(y+ky-halfKH, 0, height-1)
				row := img.Pix[sy*img.Stride:]
				for kx := 0; kx < kernel.Width; kx++ {
					sx := clampInt(x+kx-halfKW, 0, width-1)
					sum += float64(row[sx]) * kernel.Values[ky][kx]
				}
			}

			dst.Pix[y*dst.Stride+x] = clampUint8(sum)
		}
	}

	return dst
}

// ConvolveSeparable applies the outer product of weights with itself as a
// horizontal pass followed by a vertical pass. The intermediate pass is kept
// in float64 and rounding happens once, on the final value. Borders
// replicate edge pixels.
func ConvolveSeparable(img *GrayImage, weights []float64) *GrayImage {
	width, height := img.Width(), img.Height()
	half := len(weights) / 2

	tmp := make([]float64, width*height)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			var sum float64
			for k, w := range weights {
				sx := clampInt(x+k-half, 0, width-1)
				sum += float64(row[sx]) * w
			}
			tmp[y*width+x] = sum
		}
	}

	dst := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for k, w := range weights {
				sy := clampInt(y+k-half, 0, height-1)
				sum += tmp[sy*width+x] * w
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(sum)
		}
	}

	return dst
}

// GaussianBlurGray blurs img with a size x size Gaussian of the given sigma.
func GaussianBlurGray(img *GrayImage, size int, sigma float64) *GrayImage {
	return ConvolveSeparable(img, GaussianKernel1D(size, sigma))
}

// clampInt clamps an integer to the given range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds half away from zero and saturates to [0, 255].
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
