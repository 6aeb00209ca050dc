package img2sketch

import (
	"fmt"

	"github.com/wbrown/img2sketch/imageutil"
)

// Variations maps a style's display name to its sketch, in preset
// declaration order.
type Variations = OrderedMap[string, *imageutil.GrayImage]

// GenerateStyleVariations sketches img once per preset, each with a fresh
// sharpening Sketcher built from that preset.
func GenerateStyleVariations(img *imageutil.Buffer) (*Variations, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	out := NewOrderedMap[string, *imageutil.GrayImage]()
	for _, style := range Styles() {
		sk, err := FromStyle(style)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", style, err)
		}
		sketch, err := sk.Apply(img)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", style, err)
		}
		out.Set(style.String(), sketch)
	}
	return out, nil
}

// StyleGrid renders the original next to every variation with
// imageutil.CreateStyleGrid.
func StyleGrid(original *imageutil.Buffer, v *Variations) (*imageutil.RGBAImage, error) {
	return imageutil.CreateStyleGrid(original, v.Keys(), v.Values())
}
