package imageutil

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrInvalidParameter reports a bad construction argument such as a
	// non-positive sigma or a sharpen strength below 4.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput reports a malformed image buffer.
	ErrInvalidInput = errors.New("invalid input image")

	// ErrNotFound reports a missing image file.
	ErrNotFound = errors.New("image not found")

	// ErrDecode reports a file that exists but is not a supported raster.
	ErrDecode = errors.New("failed to decode image")
)
