package perclearn

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"
)

// Composite places input onto a copy of background with its top-left corner
// at offset and returns the new frame. background is not modified.
//
// Inside the disk described by opts (see NewRadialMask) the frame shows
// input unchanged. Outside it, each pixel becomes
//
//	background*fade + input
//
// so the background fades in toward the corners instead of meeting the
// foreground at a hard edge.
//
// Composite returns ErrOutOfBounds if input does not fit inside background
// at offset.
func Composite(input, background mat.Matrix, offset image.Point, opts ...MaskOption) (*mat.Dense, error) {
	dst := mat.DenseCopyOf(background)
	if err := CompositeInto(dst, input, offset, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// CompositeInto is Composite writing into dst in place.
// dst is owned by the caller and is modified only when no error is returned.
func CompositeInto(dst *mat.Dense, input mat.Matrix, offset image.Point, opts ...MaskOption) error {
	rows, cols := input.Dims()
	bgRows, bgCols := dst.Dims()
	if offset.X < 0 || offset.Y < 0 || offset.X+cols > bgCols || offset.Y+rows > bgRows {
		return fmt.Errorf("%w: %dx%d at %v on %dx%d",
			ErrOutOfBounds, cols, rows, offset, bgCols, bgRows)
	}

	mask := NewRadialMask(rows, cols, opts...)
	patch := dst.Slice(offset.Y, offset.Y+rows, offset.X, offset.X+cols).(*mat.Dense)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			fg := input.At(y, x)
			if mask.Inside(x, y) {
				patch.Set(y, x, fg)
				continue
			}
			patch.Set(y, x, patch.At(y, x)*mask.Fade(x, y)+fg)
		}
	}
	return nil
}
