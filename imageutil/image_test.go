package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 14, 23))
	src.SetRGBA(10, 20, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	img := RGBAImageFromImage(src)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", img.Width(), img.Height())
	}
	if got := img.GetRGB(0, 0); got != (RGB{R: 9, G: 8, B: 7}) {
		t.Errorf("Origin pixel should come from the source minimum, got %v", got)
	}
}

func TestGrayImageClone(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(5, 5, 200)

	clone := img.Clone()
	if !clone.Equal(img) {
		t.Error("Clone should have same pixel values")
	}

	clone.SetGrayValue(5, 5, 0)
	if img.GetGray(5, 5) != 200 {
		t.Error("Modifying clone should not affect original")
	}
	if clone.Equal(img) {
		t.Error("Equal should notice the changed pixel")
	}
}

func TestGrayImageToRGBA(t *testing.T) {
	img := NewGrayImage(2, 1)
	img.SetGrayValue(1, 0, 77)

	rgba := img.ToRGBA()
	if got := rgba.GetRGB(1, 0); got != (RGB{R: 77, G: 77, B: 77}) {
		t.Errorf("Expected gray replicated to RGB, got %v", got)
	}
	if a := rgba.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("Expected opaque alpha, got %d", a)
	}
}
