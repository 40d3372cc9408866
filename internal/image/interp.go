package image

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// InterpolationMode defines how a grid is sampled between pixel centers.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest InterpolationMode = iota

	// InterpBilinear interpolates linearly between 4 neighboring pixels.
	InterpBilinear

	// InterpBicubic interpolates with Catmull-Rom weights over a 4x4 neighborhood.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// EdgeMode defines what a sample outside the grid reads.
type EdgeMode uint8

const (
	// EdgeConstant reads 0 outside the grid.
	EdgeConstant EdgeMode = iota

	// EdgeClamp reads the nearest edge pixel.
	EdgeClamp
)

// String returns a string representation of the edge mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeConstant:
		return "Constant"
	case EdgeClamp:
		return "Clamp"
	default:
		return "Unknown"
	}
}

// Sample samples src at pixel coordinates (x, y), where pixel (col, row)
// has its center at x = col, y = row.
func Sample(src mat.Matrix, x, y float64, mode InterpolationMode, edge EdgeMode) float64 {
	switch mode {
	case InterpNearest:
		return SampleNearest(src, x, y, edge)
	case InterpBilinear:
		return SampleBilinear(src, x, y, edge)
	case InterpBicubic:
		return SampleBicubic(src, x, y, edge)
	default:
		return 0
	}
}

// SampleNearest returns the pixel whose center is closest to (x, y).
func SampleNearest(src mat.Matrix, x, y float64, edge EdgeMode) float64 {
	return pixel(src, int(math.Floor(x+0.5)), int(math.Floor(y+0.5)), edge)
}

// SampleBilinear interpolates between the 4 pixels surrounding (x, y).
func SampleBilinear(src mat.Matrix, x, y float64, edge EdgeMode) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	v00 := pixel(src, x0, y0, edge)
	if tx == 0 && ty == 0 {
		return v00
	}
	v10 := pixel(src, x0+1, y0, edge)
	v01 := pixel(src, x0, y0+1, edge)
	v11 := pixel(src, x0+1, y0+1, edge)

	return lerp2D(v00, v10, v01, v11, tx, ty)
}

// SampleBicubic interpolates (x, y) from its 4x4 neighborhood using
// Catmull-Rom splines.
func SampleBicubic(src mat.Matrix, x, y float64, edge EdgeMode) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	if tx == 0 && ty == 0 {
		return pixel(src, x0, y0, edge)
	}

	var vals [4][4]float64
	for dy := -1; dy <= 2; dy++ {
		for dx := -1; dx <= 2; dx++ {
			vals[dy+1][dx+1] = pixel(src, x0+dx, y0+dy, edge)
		}
	}

	return bicubicInterp(vals, tx, ty)
}

// pixel reads src at column x, row y, resolving out-of-range coordinates
// according to edge.
func pixel(src mat.Matrix, x, y int, edge EdgeMode) float64 {
	rows, cols := src.Dims()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		if edge != EdgeClamp {
			return 0
		}
		x = clamp(x, 0, cols-1)
		y = clamp(y, 0, rows-1)
	}
	return src.At(y, x)
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// bicubicInterp performs bicubic interpolation on a 4x4 grid using Catmull-Rom weights.
func bicubicInterp(vals [4][4]float64, tx, ty float64) float64 {
	wx := [4]float64{
		cubicWeight(tx + 1),
		cubicWeight(tx),
		cubicWeight(tx - 1),
		cubicWeight(tx - 2),
	}
	wy := [4]float64{
		cubicWeight(ty + 1),
		cubicWeight(ty),
		cubicWeight(ty - 1),
		cubicWeight(ty - 2),
	}

	var result float64
	for i := range 4 {
		for j := range 4 {
			result += vals[i][j] * wx[j] * wy[i]
		}
	}

	return result
}
