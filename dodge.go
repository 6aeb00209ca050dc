package img2sketch

import "github.com/wbrown/img2sketch/imageutil"

// DodgeEpsilon keeps the dodge quotient finite when the front layer is
// pure white.
const DodgeEpsilon float32 = 1e-7

// DodgeValue blends a single pixel: back / (1 - front + eps) on values
// normalized to [0, 1], clipped to [0, 1], scaled to [0, 255] and
// truncated. The arithmetic is float32 throughout, so every (front, back)
// pair maps to one exact output.
func DodgeValue(front, back uint8) uint8 {
	f := float32(front) / 255
	b := float32(back) / 255

	denom := float32(float32(1-f) + DodgeEpsilon)
	r := float32(b / denom)
	if r < 0 {
		r = 0
	} else if r > 1 {
		r = 1
	}
	return uint8(float32(r * 255))
}

// DodgeBlend applies DodgeValue pixel by pixel. Where front and back are
// close the result goes to white (paper); where they differ it stays dark
// (pencil strokes). Both images must have the same size.
func DodgeBlend(front, back *imageutil.GrayImage) *imageutil.GrayImage {
	width, height := back.Width(), back.Height()
	dst := imageutil.NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		f := front.Pix[y*front.Stride : y*front.Stride+width]
		b := back.Pix[y*back.Stride : y*back.Stride+width]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x := range out {
			out[x] = dodgeTable[f[x]][b[x]]
		}
	}
	return dst
}

// dodgeTable caches DodgeValue for all 65536 input pairs.
var dodgeTable = func() *[256][256]uint8 {
	var t [256][256]uint8
	for f := 0; f < 256; f++ {
		for b := 0; b < 256; b++ {
			t[f][b] = DodgeValue(uint8(f), uint8(b))
		}
	}
	return &t
}()
