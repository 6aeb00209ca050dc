package imageutil

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestBufferValidate(t *testing.T) {
	testCases := []struct {
		name  string
		buf   *Buffer
		valid bool
	}{
		{"Gray", NewBuffer(4, 3, 1), true},
		{"Color", NewBuffer(4, 3, 3), true},
		{"Nil", nil, false},
		{"ZeroWidth", NewBuffer(0, 3, 3), false},
		{"ZeroHeight", NewBuffer(4, 0, 1), false},
		{"NegativeWidth", &Buffer{Width: -1, Height: 2, Channels: 1}, false},
		{"TwoChannels", NewBuffer(4, 3, 2), false},
		{"FourChannels", NewBuffer(4, 3, 4), false},
		{"ShortPix", &Buffer{Width: 4, Height: 3, Channels: 3, Pix: make([]uint8, 35)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.buf.Validate()
			if tc.valid && err != nil {
				t.Errorf("Expected valid buffer, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestBufferFromImageGrayKeepsOneChannel(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(2, 1, color.Gray{Y: 42})

	buf := BufferFromImage(src)
	if buf.Channels != 1 {
		t.Fatalf("Expected 1 channel, got %d", buf.Channels)
	}
	if got := buf.Pix[buf.Offset(2, 1)]; got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
}

func TestBufferFromImageSubImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 6, 6))
	src.SetGray(3, 4, color.Gray{Y: 200})
	sub := src.SubImage(image.Rect(2, 3, 5, 6)).(*image.Gray)

	buf := BufferFromImage(sub)
	if buf.Width != 3 || buf.Height != 3 {
		t.Fatalf("Expected 3x3, got %dx%d", buf.Width, buf.Height)
	}
	if got := buf.Pix[buf.Offset(1, 1)]; got != 200 {
		t.Errorf("Expected sub-image pixel 200, got %d", got)
	}
}

func TestBufferFromImageColorOrder(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	buf := BufferFromImage(src)
	if buf.Channels != 3 {
		t.Fatalf("Expected 3 channels, got %d", buf.Channels)
	}
	if buf.Pix[0] != 10 || buf.Pix[1] != 20 || buf.Pix[2] != 30 {
		t.Errorf("Expected R, G, B order, got %v", buf.Pix)
	}
}

func TestBufferRoundTripThroughImage(t *testing.T) {
	color3 := CreateColorBarsImage(16, 4)
	back := BufferFromImage(color3.Image())
	if back.Channels != 3 || string(back.Pix) != string(color3.Pix) {
		t.Error("Color buffer should survive a trip through image.Image")
	}

	gray := CreateSolidGrayImage(5, 5, 99)
	back = BufferFromImage(gray.Image())
	if back.Channels != 1 || string(back.Pix) != string(gray.Pix) {
		t.Error("Gray buffer should survive a trip through image.Image")
	}
}

func TestBufferClone(t *testing.T) {
	buf := CreateSolidGrayImage(2, 2, 5)
	clone := buf.Clone()
	clone.Pix[0] = 6
	if buf.Pix[0] != 5 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestToGrayscale(t *testing.T) {
	testCases := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"White", RGB{255, 255, 255}, 255},
		{"Black", RGB{0, 0, 0}, 0},
		{"Red", RGB{255, 0, 0}, 76},
		{"Green", RGB{0, 255, 0}, 150},
		{"Blue", RGB{0, 0, 255}, 29},
		{"Mid", RGB{128, 128, 128}, 128},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gray := ToGrayscale(CreateSolidImage(1, 1, tc.c))
			if got := gray.GetGray(0, 0); got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestToGrayscaleCopiesSingleChannel(t *testing.T) {
	buf := CreateSolidGrayImage(3, 3, 50)
	gray := ToGrayscale(buf)
	gray.SetGrayValue(0, 0, 0)
	if buf.Pix[0] != 50 {
		t.Error("Grayscale of a gray buffer must be a copy, not an alias")
	}
}
