package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// GridCellSize is the side length of every cell in CreateStyleGrid.
const GridCellSize = 400

const (
	labelX       = 20
	labelY       = 40
	labelPadding = 6

	comparisonLabelSize = 22.0
	gridLabelSize       = 20.0
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

// loadLabelFont parses the embedded Go Regular face once.
func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = freetype.ParseFont(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// DrawLabel writes text in white with its baseline at (x, y) over a
// translucent dark box, so it stays readable on both photos and the
// near-white sketches.
func DrawLabel(img *RGBAImage, text string, x, y int, size float64) error {
	f, err := loadLabelFont()
	if err != nil {
		return fmt.Errorf("failed to load label font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	box := image.Rect(
		x-labelPadding,
		y-metrics.Ascent.Ceil()-labelPadding,
		x+width+labelPadding,
		y+metrics.Descent.Ceil()+labelPadding,
	).Intersect(img.Bounds())
	backdrop := image.NewUniform(color.RGBA{A: 160})
	draw.Draw(img.RGBA, box, backdrop, image.Point{}, draw.Over)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(text, freetype.Pt(x, y)); err != nil {
		return fmt.Errorf("failed to draw label %q: %w", text, err)
	}
	return nil
}

// CreateComparison places the original and the sketch side by side with a
// label on each. The sketch is stretched to the original's height when the
// two differ.
func CreateComparison(original *Buffer, sketch *GrayImage, labels [2]string) (*RGBAImage, error) {
	left := original.RGBA()
	right := sketch.ToRGBA()
	if right.Height() != left.Height() {
		right = Resize(right, right.Width(), left.Height(), InterpolationLinear)
	}

	out := NewRGBAImage(left.Width()+right.Width(), left.Height())
	draw.Draw(out.RGBA, left.Bounds(), left.RGBA, image.Point{}, draw.Src)
	draw.Draw(out.RGBA, right.Bounds().Add(image.Pt(left.Width(), 0)), right.RGBA, image.Point{}, draw.Src)

	if err := DrawLabel(out, labels[0], labelX, labelY, comparisonLabelSize); err != nil {
		return nil, err
	}
	if err := DrawLabel(out, labels[1], left.Width()+labelX, labelY, comparisonLabelSize); err != nil {
		return nil, err
	}
	return out, nil
}

// GridShape returns the columns and rows used for n cells: a near-square
// layout with ceil(sqrt(n)) columns.
func GridShape(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// CreateStyleGrid lays out the original followed by each sketch in a
// near-square grid of GridCellSize cells, labelling every cell. names and
// sketches must have the same length. Unused cells are left black.
func CreateStyleGrid(original *Buffer, names []string, sketches []*GrayImage) (*RGBAImage, error) {
	if len(names) != len(sketches) {
		return nil, fmt.Errorf("%w: %d names for %d sketches", ErrInvalidParameter, len(names), len(sketches))
	}

	cells := make([]*RGBAImage, 0, len(sketches)+1)
	labels := make([]string, 0, len(sketches)+1)
	cells = append(cells, fitCell(original.RGBA()))
	labels = append(labels, "Original")
	for i, s := range sketches {
		cells = append(cells, fitCell(s.ToRGBA()))
		labels = append(labels, names[i])
	}

	cols, rows := GridShape(len(cells))
	out := NewRGBAImage(cols*GridCellSize, rows*GridCellSize)
	out.Fill(out.Bounds(), RGB{})

	for i, cell := range cells {
		origin := image.Pt((i%cols)*GridCellSize, (i/cols)*GridCellSize)
		draw.Draw(out.RGBA, cell.Bounds().Add(origin), cell.RGBA, image.Point{}, draw.Src)
		if err := DrawLabel(out, labels[i], origin.X+labelX, origin.Y+labelY, gridLabelSize); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fitCell stretches img to a GridCellSize square.
func fitCell(img *RGBAImage) *RGBAImage {
	interp := InterpolationLinear
	if img.Width() > GridCellSize || img.Height() > GridCellSize {
		interp = InterpolationArea
	}
	return Resize(img, GridCellSize, GridCellSize, interp)
}
