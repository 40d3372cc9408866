// Package image provides pixel-grid helpers for perclearn: affine
// transforms, interpolated sampling of float grids, and conversion between
// gonum matrices and standard library images.
package image

import (
	"math"
)

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// Points are (x, y) in pixel units with x along columns and y along rows.
type Affine struct {
	a, b, c float64 // x' = ax + by + c
	d, e, f float64 // y' = dx + ey + f
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{
		a: 1, b: 0, c: tx,
		d: 0, e: 1, f: ty,
	}
}

// Rotate returns a rotation by angle radians around the origin.
// Positive angles turn +x toward +y.
func Rotate(angle float64) Affine {
	return rotation(math.Cos(angle), math.Sin(angle))
}

// RotateDegrees is Rotate with the angle given in degrees.
// Multiples of 90 degrees produce exact 0/±1 coefficients so that quarter
// turns map pixel centers onto pixel centers without rounding drift.
func RotateDegrees(deg float64) Affine {
	return rotation(sincosDegrees(deg))
}

func rotation(cos, sin float64) Affine {
	return Affine{
		a: cos, b: -sin, c: 0,
		d: sin, e: cos, f: 0,
	}
}

// sincosDegrees returns cos and sin of deg, exact for quarter turns.
func sincosDegrees(deg float64) (cos, sin float64) {
	turn := math.Mod(deg, 360)
	if turn < 0 {
		turn += 360
	}
	switch turn {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	rad := deg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// Multiply returns a*other: other is applied first, then a.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.a*a.e - a.b*a.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	invDet := 1.0 / det

	return Affine{
		a: a.e * invDet,
		b: -a.b * invDet,
		c: (a.b*a.f - a.c*a.e) * invDet,
		d: -a.d * invDet,
		e: a.a * invDet,
		f: (a.c*a.d - a.a*a.f) * invDet,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// RotateAt returns a rotation by angle radians around (cx, cy).
func RotateAt(angle, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// RotateDegreesAt returns a rotation by deg degrees around (cx, cy).
func RotateDegreesAt(deg, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(RotateDegrees(deg)).Multiply(Translate(-cx, -cy))
}
