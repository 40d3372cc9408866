package perclearn

import "gonum.org/v1/gonum/mat"

// ScaleRange linearly maps field onto [lo, hi]: the minimum becomes lo and
// the maximum becomes hi. The input is not modified.
//
// A constant field has no range to stretch and yields NaN everywhere.
func ScaleRange(field mat.Matrix, lo, hi float64) *mat.Dense {
	out := mat.DenseCopyOf(field)

	minVal := mat.Min(out)
	out.Apply(func(_, _ int, v float64) float64 { return v - minVal }, out)

	div := mat.Max(out) / (hi - lo)
	out.Apply(func(_, _ int, v float64) float64 { return v/div + lo }, out)

	return out
}

// Scale255 maps field onto [0, 255].
func Scale255(field mat.Matrix) *mat.Dense {
	return ScaleRange(field, 0, 255)
}
