package perclearn

import "gonum.org/v1/gonum/mat"

// RadialMask describes the circular blend used by Composite.
//
// Pixels within Radius of Center belong to the disk and keep the foreground
// untouched. Outside the disk a fade weight rises from 0 at the disk edge to
// 1 at the farthest pixel; it scales how much background shows through.
type RadialMask struct {
	rows, cols int
	center     Point
	radius     float64
	dist       *mat.Dense
	fade       *mat.Dense
}

// NewRadialMask builds the mask for a rows×cols foreground.
func NewRadialMask(rows, cols int, opts ...MaskOption) *RadialMask {
	var o maskOptions
	for _, opt := range opts {
		opt(&o)
	}

	center := o.center
	if !o.hasCenter {
		center = Pt(float64(cols/2), float64(rows/2))
	}
	radius := o.radius
	if !o.hasRadius {
		radius = min(center.X, center.Y, float64(cols)-center.X, float64(rows)-center.Y)
	}

	dist := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dist.Set(y, x, Pt(float64(x), float64(y)).Distance(center))
		}
	}

	// Flatten the disk to a plateau at radius before stretching to [0, 1].
	plateau := mat.DenseCopyOf(dist)
	plateau.Apply(func(_, _ int, d float64) float64 {
		if d <= radius {
			return radius
		}
		return d
	}, plateau)

	return &RadialMask{
		rows:   rows,
		cols:   cols,
		center: center,
		radius: radius,
		dist:   dist,
		fade:   ScaleRange(plateau, 0, 1),
	}
}

// Rows returns the mask height.
func (m *RadialMask) Rows() int { return m.rows }

// Cols returns the mask width.
func (m *RadialMask) Cols() int { return m.cols }

// Center returns the disk center.
func (m *RadialMask) Center() Point { return m.center }

// Radius returns the disk radius.
func (m *RadialMask) Radius() float64 { return m.radius }

// Distance returns the distance of pixel (x, y) from the center.
func (m *RadialMask) Distance(x, y int) float64 { return m.dist.At(y, x) }

// Inside reports whether pixel (x, y) lies in the disk.
func (m *RadialMask) Inside(x, y int) bool { return m.dist.At(y, x) <= m.radius }

// Fade returns the background weight at pixel (x, y).
//
// When every pixel is inside the disk there is no exterior to stretch
// and the fade is NaN; callers only read it for exterior pixels.
func (m *RadialMask) Fade(x, y int) float64 { return m.fade.At(y, x) }

// FadeField returns a copy of the full fade weight grid.
func (m *RadialMask) FadeField() *mat.Dense { return mat.DenseCopyOf(m.fade) }
