package imageutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateColorBarsImage(64, 64)

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(tmpDir, "bars"+ext)
			if err := SaveBuffer(img, path); err != nil {
				t.Fatalf("Failed to save %s: %v", ext, err)
			}

			loaded, err := LoadImage(path)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", ext, err)
			}

			// lossless formats
			if mse := CalculateMSE(img.RGBA(), loaded.RGBA()); mse > 0.01 {
				t.Errorf("%s should be lossless, MSE=%f", ext, mse)
			}
		})
	}
}

func TestLoadImageJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.jpg")
	img := CreateEdgeImage(64, 64)
	if err := SaveBuffer(img, path); err != nil {
		t.Fatalf("Failed to save JPEG: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Failed to load JPEG: %v", err)
	}
	if loaded.Width != 64 || loaded.Height != 64 {
		t.Errorf("Expected 64x64, got %dx%d", loaded.Width, loaded.Height)
	}
	if mse := CalculateMSE(img.RGBA(), loaded.RGBA()); mse > 50 {
		t.Errorf("JPEG at quality 95 should be close, MSE=%f", mse)
	}
}

func TestSaveGrayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	gray := ToGrayscale(CreateEdgeImage(20, 10))
	if err := SaveGrayImage(gray, path); err != nil {
		t.Fatalf("Failed to save gray PNG: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Failed to load gray PNG: %v", err)
	}
	if loaded.Channels != 1 {
		t.Errorf("Gray PNG should load as 1 channel, got %d", loaded.Channels)
	}
	if !ToGrayscale(loaded).Equal(gray) {
		t.Error("Gray PNG should round trip exactly")
	}
}

func TestSaveImageCreatesDirectoriesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")

	if err := SaveBuffer(CreateSolidImage(4, 4, RGB{R: 1}), path); err != nil {
		t.Fatalf("Failed to save into missing directories: %v", err)
	}
	if err := SaveBuffer(CreateSolidImage(8, 2, RGB{G: 2}), path); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width != 8 || loaded.Height != 2 {
		t.Errorf("Expected the second image (8x2), got %dx%d", loaded.Width, loaded.Height)
	}
}

func TestLoadImageErrors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := LoadImage(filepath.Join(tmpDir, "missing.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Missing file should give ErrNotFound, got %v", err)
	}

	corrupt := filepath.Join(tmpDir, "corrupt.jpg")
	if err := os.WriteFile(corrupt, []byte("not an image at all"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadImage(corrupt)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Corrupt file should give ErrDecode, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("Corrupt file should not be reported as missing")
	}
}
