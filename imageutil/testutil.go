package imageutil

import (
	"math"
	"math/rand"
)

// CreateGradientImage creates a horizontal gray gradient as a color buffer.
func CreateGradientImage(width, height int) *Buffer {
	buf := NewBuffer(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			setRGB(buf, x, y, RGB{R: v, G: v, B: v})
		}
	}
	return buf
}

// CreateCheckerboardImage creates a black and white checkerboard.
func CreateCheckerboardImage(width, height, squareSize int) *Buffer {
	buf := NewBuffer(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				setRGB(buf, x, y, RGB{R: 255, G: 255, B: 255})
			}
		}
	}
	return buf
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *Buffer {
	buf := NewBuffer(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			setRGB(buf, x, y, c)
		}
	}
	return buf
}

// CreateSolidGrayImage creates a single-channel image of constant value v.
func CreateSolidGrayImage(width, height int, v uint8) *Buffer {
	buf := NewBuffer(width, height, 1)
	for i := range buf.Pix {
		buf.Pix[i] = v
	}
	return buf
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *Buffer {
	buf := NewBuffer(width, height, 3)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			setRGB(buf, x, y, colors[colorIdx])
		}
	}
	return buf
}

// CreateEdgeImage creates a gray field with a white rectangle and a black
// diagonal, which gives the sketch clear strokes to draw.
func CreateEdgeImage(width, height int) *Buffer {
	buf := CreateSolidImage(width, height, RGB{R: 128, G: 128, B: 128})

	rx1, ry1 := width/4, height/4
	rx2, ry2 := 3*width/4, 3*height/4
	for y := ry1; y < ry2; y++ {
		for x := rx1; x < rx2; x++ {
			setRGB(buf, x, y, RGB{R: 255, G: 255, B: 255})
		}
	}

	for i := 0; i < min(width, height)/2; i++ {
		setRGB(buf, i, i, RGB{})
	}
	return buf
}

// CreateNoiseImage creates a reproducible random color image.
func CreateNoiseImage(width, height int, seed int64) *Buffer {
	rng := rand.New(rand.NewSource(seed))
	buf := NewBuffer(width, height, 3)
	rng.Read(buf.Pix)
	return buf
}

func setRGB(buf *Buffer, x, y int, c RGB) {
	i := buf.Offset(x, y)
	buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = c.R, c.G, c.B
}

// CalculateMSE calculates the Mean Squared Error between two RGBA images.
func CalculateMSE(img1, img2 *RGBAImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height * 3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}

	return sumSq / count
}

// CalculateMSEGray calculates the Mean Squared Error between two grayscale images.
func CalculateMSEGray(img1, img2 *GrayImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := float64(img1.GetGray(x, y)) - float64(img2.GetGray(x, y))
			sumSq += d * d
		}
	}

	return sumSq / float64(width*height)
}

// CalculateMaxDiffGray returns the largest absolute pixel difference between
// two grayscale images, or 256 if their sizes differ.
func CalculateMaxDiffGray(img1, img2 *GrayImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			d := int(img1.GetGray(x, y)) - int(img2.GetGray(x, y))
			if d < 0 {
				d = -d
			}
			maxDiff = max(maxDiff, d)
		}
	}
	return maxDiff
}
