package perclearn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	intImage "github.com/gogpu/perclearn/internal/image"
)

// Rotate returns img turned counter-clockwise (as displayed, row 0 on top)
// by degrees around its center. The result has the same shape as img;
// corners that rotate in from outside read as 0 unless WithEdge says otherwise.
//
// Quarter turns are exact: Rotate(img, 90) moves every pixel onto another
// pixel center without interpolation error.
func Rotate(img mat.Matrix, degrees float64, opts ...RotateOption) *mat.Dense {
	o := defaultRotateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := img.Dims()
	cx := float64(cols-1) / 2
	cy := float64(rows-1) / 2

	// With y pointing down, counter-clockwise on screen is a negative angle.
	// Each output pixel pulls from the source through the inverse transform.
	inv, ok := intImage.RotateDegreesAt(-degrees, cx, cy).Invert()
	if !ok {
		panic("perclearn: singular rotation")
	}

	out := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sx, sy := inv.TransformPoint(float64(x), float64(y))
			out.Set(y, x, intImage.Sample(img, sx, sy, o.interp, o.edge))
		}
	}
	return out
}

// RotateRandom rotates img by a whole-degree angle drawn uniformly from
// [0, 360) and returns the rotated image with the angle used.
func RotateRandom(rng *rand.Rand, img mat.Matrix, opts ...RotateOption) (*mat.Dense, float64) {
	angle := float64(rng.IntN(360))
	return Rotate(img, angle, opts...), angle
}
