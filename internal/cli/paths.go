package cli

import (
	"path/filepath"
	"strings"
)

// siblingPath returns <dir of input>/<stem>_<suffix><ext>.
func siblingPath(input, suffix, ext string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), stem+"_"+suffix+ext)
}

// defaultOutputPath inserts "_sketch" before the input's extension. Inputs
// without an extension get ".png".
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".png"
	}
	return siblingPath(input, "sketch", ext)
}

// parseFormats splits a comma separated extension list, dropping blanks.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
