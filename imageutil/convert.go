package imageutil

// Fixed-point BT.601 luma weights with 14 fractional bits. These are the
// coefficients OpenCV uses for COLOR_BGR2GRAY on 8-bit input, so the result
// is bit-exact with cv2.cvtColor.
const (
	lumaShift = 14
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
	lumaRound = 1 << (lumaShift - 1)
)

// Luma returns the 8-bit luminance of an R, G, B triple:
// Y = 0.299*R + 0.587*G + 0.114*B, rounded.
func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*int(r) + lumaG*int(g) + lumaB*int(b) + lumaRound) >> lumaShift)
}

// ToGrayscale reduces a buffer to one channel. Color buffers go through
// Luma; single-channel buffers are copied so the caller's pixels are never
// aliased. The buffer must already be valid.
func ToGrayscale(buf *Buffer) *GrayImage {
	gray := NewGrayImage(buf.Width, buf.Height)

	if buf.Channels == 1 {
		for y := 0; y < buf.Height; y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+buf.Width], buf.Pix[y*buf.Width:(y+1)*buf.Width])
		}
		return gray
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			i := buf.Offset(x, y)
			gray.Pix[y*gray.Stride+x] = Luma(buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2])
		}
	}
	return gray
}

// RGBAToGrayscale reduces an RGBAImage with the same weights as ToGrayscale.
func RGBAToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			gray.Pix[y*gray.Stride+x] = Luma(c.R, c.G, c.B)
		}
	}
	return gray
}

// Invert returns a new image with every sample replaced by 255 - v.
func Invert(img *GrayImage) *GrayImage {
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x, v := range src {
			out[x] = 255 - v
		}
	}
	return dst
}
