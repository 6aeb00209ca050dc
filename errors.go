package img2sketch

import "github.com/wbrown/img2sketch/imageutil"

// Errors shared with imageutil, re-exported so callers need one import.
var (
	ErrInvalidParameter = imageutil.ErrInvalidParameter
	ErrInvalidInput     = imageutil.ErrInvalidInput
	ErrNotFound         = imageutil.ErrNotFound
	ErrDecode           = imageutil.ErrDecode
)
