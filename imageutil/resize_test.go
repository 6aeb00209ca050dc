package imageutil

import "testing"

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100).RGBA()

	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestAreaResizeAveragesBlocks(t *testing.T) {
	// 2x2 checker squares shrunk by 2 land exactly on block boundaries, but
	// 1x1 squares shrunk by 2 average to mid gray.
	img := CreateCheckerboardImage(8, 8, 1).RGBA()
	small := Resize(img, 4, 4, InterpolationArea)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := int(small.GetRGB(x, y).R)
			if v < 120 || v > 135 {
				t.Errorf("(%d,%d) should average to ~127, got %d", x, y, v)
			}
		}
	}
}

func TestFitSize(t *testing.T) {
	testCases := []struct {
		name          string
		w, h          int
		maxW, maxH    int
		wantW, wantH  int
	}{
		{"Within", 800, 600, 1920, 1080, 800, 600},
		{"Exact", 1920, 1080, 1920, 1080, 1920, 1080},
		{"Wide", 3840, 1080, 1920, 1080, 1920, 540},
		{"Tall", 1000, 4000, 1920, 1080, 270, 1080},
		{"Thin", 10000, 1, 100, 100, 100, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FitSize(tc.w, tc.h, tc.maxW, tc.maxH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("FitSize = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestResizeToFitNoop(t *testing.T) {
	buf := CreateEdgeImage(40, 30)
	if got := ResizeToFit(buf, 40, 30); got != buf {
		t.Error("A buffer within bounds should be returned unchanged")
	}
}

func TestResizeToFitKeepsChannelsAndAspect(t *testing.T) {
	color3 := ResizeToFit(CreateEdgeImage(400, 200), 100, 100)
	if color3.Width != 100 || color3.Height != 50 || color3.Channels != 3 {
		t.Errorf("Expected 100x50x3, got %dx%dx%d", color3.Width, color3.Height, color3.Channels)
	}
	if err := color3.Validate(); err != nil {
		t.Errorf("Resized buffer should be valid: %v", err)
	}

	gray := ResizeToFit(CreateSolidGrayImage(300, 600, 80), 100, 100)
	if gray.Width != 50 || gray.Height != 100 || gray.Channels != 1 {
		t.Errorf("Expected 50x100x1, got %dx%dx%d", gray.Width, gray.Height, gray.Channels)
	}
	for i, v := range gray.Pix {
		if v != 80 {
			t.Fatalf("Area average of a constant image should stay 80, pixel %d = %d", i, v)
		}
	}
}
