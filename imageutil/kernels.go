package imageutil

import (
	"fmt"
	"math"
)

// MinSharpenStrength is the smallest centre weight Sharpening accepts.
const MinSharpenStrength = 4

// maxSharpenStrength is the strength above which Sharpening warns about
// over-sharpened output.
const maxSharpenStrength = 10

// Laplacian returns the 4-neighbour Laplacian kernel.
func Laplacian() *Kernel {
	return NewKernel([][]float64{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})
}

// Sharpening returns a 3x3 sharpening kernel with strength at the centre,
// -1 on the four orthogonal neighbours and 0 on the diagonals.
//
// Strengths below 4 are rejected: the kernel sum drops below 1 and the
// filter darkens the image instead of sharpening it. Strengths above 10
// are accepted with a warning.
func Sharpening(strength int) (*Kernel, error) {
	if strength < MinSharpenStrength {
		return nil, fmt.Errorf("%w: sharpen strength %d is below %d",
			ErrInvalidParameter, strength, MinSharpenStrength)
	}
	if strength > maxSharpenStrength {
		pkgLogger().Warn("sharpen strength may cause over-sharpening", "strength", strength)
	}

	s := float64(strength)
	return NewKernel([][]float64{
		{0, -1, 0},
		{-1, s, -1},
		{0, -1, 0},
	}), nil
}

// EdgeEnhance returns the 8-neighbour edge enhancement kernel.
func EdgeEnhance() *Kernel {
	return NewKernel([][]float64{
		{-1, -1, -1},
		{-1, 9, -1},
		{-1, -1, -1},
	})
}

// SobelX returns the horizontal Sobel gradient kernel.
func SobelX() *Kernel {
	return NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
}

// SobelY returns the vertical Sobel gradient kernel.
func SobelY() *Kernel {
	return NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
}

// GaussianKernel returns a normalized size x size Gaussian. An even size is
// bumped to the next odd value so the kernel has a centre pixel.
func GaussianKernel(size int, sigma float64) *Kernel {
	g := GaussianKernel1D(size, sigma)
	n := len(g)

	values := make([][]float64, n)
	var sum float64
	for y := 0; y < n; y++ {
		values[y] = make([]float64, n)
		dy := float64(y - n/2)
		for x := 0; x < n; x++ {
			dx := float64(x - n/2)
			values[y][x] = math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			sum += values[y][x]
		}
	}
	for y := range values {
		for x := range values[y] {
			values[y][x] /= sum
		}
	}
	return NewKernel(values)
}

// GaussianKernel1D returns the normalized 1-D factor of GaussianKernel.
// Its outer product with itself equals GaussianKernel(size, sigma).
func GaussianKernel1D(size int, sigma float64) []float64 {
	if size%2 == 0 {
		size++
	}
	if size < 1 {
		size = 1
	}

	g := make([]float64, size)
	half := size / 2
	var sum float64
	for i := range g {
		d := float64(i - half)
		g[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += g[i]
	}
	for i := range g {
		g[i] /= sum
	}
	return g
}

// BlurKernelSize returns the odd blur window for sigma: floor(6*sigma)+1,
// bumped by one if that is even.
func BlurKernelSize(sigma float64) int {
	size := int(math.Floor(6*sigma)) + 1
	if size%2 == 0 {
		size++
	}
	return size
}
