package imageutil

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is an interleaved 8-bit raster in row-major order with a stride of
// Width*Channels. Channels is 1 for grayscale or 3 for color, in R, G, B
// order.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewBuffer allocates a zeroed buffer. It does not validate its arguments;
// use Validate before handing the buffer to the pipeline.
func NewBuffer(width, height, channels int) *Buffer {
	n := 0
	if width > 0 && height > 0 && channels > 0 {
		n = width * height * channels
	}
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, n),
	}
}

// Validate checks the buffer invariants and returns an error wrapping
// ErrInvalidInput when one is violated.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, b.Width, b.Height)
	}
	if b.Channels != 1 && b.Channels != 3 {
		return fmt.Errorf("%w: unsupported channel count %d", ErrInvalidInput, b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: pixel data has %d bytes, want %d", ErrInvalidInput, len(b.Pix), want)
	}
	return nil
}

// Offset returns the index of the first sample of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{Width: b.Width, Height: b.Height, Channels: b.Channels}
	clone.Pix = append([]uint8(nil), b.Pix...)
	return clone
}

// BufferFromImage converts a decoded image. *image.Gray sources keep a
// single channel; every other model is flattened to opaque R, G, B.
func BufferFromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if g, ok := img.(*image.Gray); ok {
		buf := NewBuffer(width, height, 1)
		for y := 0; y < height; y++ {
			row := g.Pix[(y+bounds.Min.Y-g.Rect.Min.Y)*g.Stride+(bounds.Min.X-g.Rect.Min.X):]
			copy(buf.Pix[y*width:(y+1)*width], row[:width])
		}
		return buf
	}

	rgba := RGBAImageFromImage(img)
	buf := NewBuffer(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := rgba.RGBAAt(x, y)
			i := buf.Offset(x, y)
			buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = c.R, c.G, c.B
		}
	}
	return buf
}

// BufferFromGray copies a GrayImage into a single-channel buffer.
func BufferFromGray(img *GrayImage) *Buffer {
	width, height := img.Width(), img.Height()
	buf := NewBuffer(width, height, 1)
	for y := 0; y < height; y++ {
		copy(buf.Pix[y*width:(y+1)*width], img.Pix[y*img.Stride:y*img.Stride+width])
	}
	return buf
}

// BufferFromRGBA copies an RGBAImage into a three-channel buffer, dropping
// alpha.
func BufferFromRGBA(img *RGBAImage) *Buffer {
	width, height := img.Width(), img.Height()
	buf := NewBuffer(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.GetRGB(x, y)
			i := buf.Offset(x, y)
			buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = c.R, c.G, c.B
		}
	}
	return buf
}

// RGBA expands the buffer to an opaque RGBAImage. Gray samples are
// replicated across R, G and B.
func (b *Buffer) RGBA() *RGBAImage {
	img := NewRGBAImage(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := b.Offset(x, y)
			if b.Channels == 1 {
				v := b.Pix[i]
				img.SetRGB(x, y, RGB{R: v, G: v, B: v})
				continue
			}
			img.SetRGB(x, y, RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]})
		}
	}
	return img
}

// Image returns a standard library view suitable for encoding.
func (b *Buffer) Image() image.Image {
	if b.Channels == 1 {
		g := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		copy(g.Pix, b.Pix)
		return g
	}
	return b.RGBA().RGBA
}

// At returns the color at (x, y) for tests and debugging.
func (b *Buffer) At(x, y int) color.Color {
	i := b.Offset(x, y)
	if b.Channels == 1 {
		return color.Gray{Y: b.Pix[i]}
	}
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 255}
}
