package image

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func TestIdentity(t *testing.T) {
	a := Identity()

	x, y := a.TransformPoint(10, 20)
	if math.Abs(x-10) > epsilon || math.Abs(y-20) > epsilon {
		t.Errorf("Identity transform failed: got (%f, %f), want (10, 20)", x, y)
	}

	if a.a != 1 || a.e != 1 {
		t.Errorf("Identity diagonal should be 1: got a=%f, e=%f", a.a, a.e)
	}
	if a.b != 0 || a.c != 0 || a.d != 0 || a.f != 0 {
		t.Errorf("Identity off-diagonal should be 0")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		tx, ty     float64
		inX, inY   float64
		outX, outY float64
	}{
		{"positive", 5, 10, 0, 0, 5, 10},
		{"negative", -5, -10, 10, 20, 5, 10},
		{"mixed", 3, -4, 2, 8, 5, 4},
		{"zero", 0, 0, 10, 20, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Translate(tt.tx, tt.ty).TransformPoint(tt.inX, tt.inY)
			if math.Abs(x-tt.outX) > epsilon || math.Abs(y-tt.outY) > epsilon {
				t.Errorf("Translate(%f, %f).TransformPoint(%f, %f) = (%f, %f), want (%f, %f)",
					tt.tx, tt.ty, tt.inX, tt.inY, x, y, tt.outX, tt.outY)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	x, y := Rotate(math.Pi/2).TransformPoint(1, 0)
	if math.Abs(x) > epsilon || math.Abs(y-1) > epsilon {
		t.Errorf("Rotate(pi/2) (1,0) = (%f, %f), want (0, 1)", x, y)
	}
}

func TestRotateDegreesExactQuarterTurns(t *testing.T) {
	tests := []struct {
		deg        float64
		outX, outY float64
	}{
		{0, 1, 0},
		{90, 0, 1},
		{180, -1, 0},
		{270, 0, -1},
		{360, 1, 0},
		{-90, 0, -1},
		{450, 0, 1},
	}

	for _, tt := range tests {
		x, y := RotateDegrees(tt.deg).TransformPoint(1, 0)
		// Quarter turns must be bit-exact, not merely close.
		if x != tt.outX || y != tt.outY {
			t.Errorf("RotateDegrees(%v) (1,0) = (%v, %v), want (%v, %v)", tt.deg, x, y, tt.outX, tt.outY)
		}
	}
}

func TestRotateDegreesMatchesRadians(t *testing.T) {
	for _, deg := range []float64{15, 45, 123, 301} {
		a := RotateDegrees(deg)
		b := Rotate(deg * math.Pi / 180)
		ax, ay := a.TransformPoint(3, -2)
		bx, by := b.TransformPoint(3, -2)
		if math.Abs(ax-bx) > epsilon || math.Abs(ay-by) > epsilon {
			t.Errorf("RotateDegrees(%v) = (%f, %f), Rotate = (%f, %f)", deg, ax, ay, bx, by)
		}
	}
}

func TestRotateAtKeepsCenter(t *testing.T) {
	a := RotateAt(1.234, 13.5, 13.5)
	x, y := a.TransformPoint(13.5, 13.5)
	if math.Abs(x-13.5) > epsilon || math.Abs(y-13.5) > epsilon {
		t.Errorf("RotateAt center moved to (%f, %f)", x, y)
	}

	b := RotateDegreesAt(90, 1, 1)
	x, y = b.TransformPoint(2, 1)
	if x != 1 || y != 2 {
		t.Errorf("RotateDegreesAt(90, 1, 1) (2,1) = (%v, %v), want (1, 2)", x, y)
	}
}

func TestMultiply(t *testing.T) {
	// Translate first, then rotate.
	a := Rotate(math.Pi).Multiply(Translate(1, 0))
	x, y := a.TransformPoint(0, 0)
	if math.Abs(x+1) > epsilon || math.Abs(y) > epsilon {
		t.Errorf("Multiply order: got (%f, %f), want (-1, 0)", x, y)
	}
}

func TestInvert(t *testing.T) {
	a := RotateDegreesAt(37, 4, 5).Multiply(Translate(2, -3))
	inv, ok := a.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}

	x, y := a.TransformPoint(7, 11)
	x, y = inv.TransformPoint(x, y)
	if math.Abs(x-7) > 1e-9 || math.Abs(y-11) > 1e-9 {
		t.Errorf("inverse round trip = (%f, %f), want (7, 11)", x, y)
	}
}

func TestInvertSingular(t *testing.T) {
	if _, ok := (Affine{}).Invert(); ok {
		t.Error("Invert() of zero matrix should fail")
	}
}
