package perclearn

import (
	"errors"
	"image"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCompositeLargeRadiusPastesInput(t *testing.T) {
	input := ramp(6, 6)
	bg := filled(12, 12, 100)

	got, err := Composite(input, bg, image.Pt(3, 4), WithRadius(100))
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			want := 100.0
			if x >= 3 && x < 9 && y >= 4 && y < 10 {
				want = input.At(y-4, x-3)
			}
			if got.At(y, x) != want {
				t.Fatalf("frame (%d,%d) = %v, want %v", x, y, got.At(y, x), want)
			}
		}
	}
}

func TestCompositeDoesNotModifyBackground(t *testing.T) {
	bg := filled(8, 8, 7)
	if _, err := Composite(ramp(4, 4), bg, image.Pt(2, 2)); err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	if !mat.Equal(bg, filled(8, 8, 7)) {
		t.Error("Composite() modified its background argument")
	}
}

func TestCompositeBlend(t *testing.T) {
	input := filled(4, 4, 1)
	bg := filled(4, 4, 10)

	got, err := Composite(input, bg, image.Point{})
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	mask := NewRadialMask(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 1.0
			if !mask.Inside(x, y) {
				want = 10*mask.Fade(x, y) + 1
			}
			if math.Abs(got.At(y, x)-want) > epsilon {
				t.Errorf("frame (%d,%d) = %v, want %v", x, y, got.At(y, x), want)
			}
		}
	}

	// The farthest corner shows the full background plus the foreground.
	if v := got.At(0, 0); math.Abs(v-11) > epsilon {
		t.Errorf("corner = %v, want 11", v)
	}
	// Center and disk edge are pure foreground.
	for _, p := range [][2]int{{2, 2}, {0, 2}, {2, 0}} {
		if v := got.At(p[1], p[0]); v != 1 {
			t.Errorf("disk pixel %v = %v, want 1", p, v)
		}
	}
}

func TestCompositeZeroRadius(t *testing.T) {
	input := filled(5, 5, 3)
	bg := filled(5, 5, 50)

	got, err := Composite(input, bg, image.Point{}, WithRadius(0))
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	// Only the center pixel escapes the fade.
	if v := got.At(2, 2); v != 3 {
		t.Errorf("center = %v, want 3", v)
	}
	mask := NewRadialMask(5, 5, WithRadius(0))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 2 && y == 2 {
				continue
			}
			want := 50*mask.Fade(x, y) + 3
			if math.Abs(got.At(y, x)-want) > epsilon {
				t.Errorf("frame (%d,%d) = %v, want %v", x, y, got.At(y, x), want)
			}
			if got.At(y, x) <= 3 {
				t.Errorf("frame (%d,%d) = %v shows no background", x, y, got.At(y, x))
			}
		}
	}
}

func TestCompositeCustomCenter(t *testing.T) {
	input := filled(6, 6, 2)
	got, err := Composite(input, filled(6, 6, 8), image.Point{}, WithCenter(0, 0), WithRadius(1))
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}} {
		if v := got.At(p[1], p[0]); v != 2 {
			t.Errorf("disk pixel %v = %v, want 2", p, v)
		}
	}
	if v := got.At(5, 5); math.Abs(v-10) > epsilon {
		t.Errorf("far corner = %v, want 10", v)
	}
}

func TestCompositeOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		offset image.Point
	}{
		{"right edge", image.Pt(5, 0)},
		{"bottom edge", image.Pt(0, 5)},
		{"negative x", image.Pt(-1, 0)},
		{"negative y", image.Pt(0, -1)},
		{"far away", image.Pt(100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg := filled(8, 8, 1)
			_, err := Composite(ramp(4, 4), bg, tt.offset)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Composite(%v) error = %v, want ErrOutOfBounds", tt.offset, err)
			}

			if err := CompositeInto(bg, ramp(4, 4), tt.offset); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("CompositeInto(%v) error = %v, want ErrOutOfBounds", tt.offset, err)
			}
			if !mat.Equal(bg, filled(8, 8, 1)) {
				t.Error("CompositeInto modified dst on error")
			}
		})
	}
}

func TestCompositeIntoMutatesDst(t *testing.T) {
	dst := filled(8, 8, 0)
	if err := CompositeInto(dst, filled(4, 4, 9), image.Pt(4, 4), WithRadius(10)); err != nil {
		t.Fatalf("CompositeInto() error = %v", err)
	}
	if dst.At(7, 7) != 9 || dst.At(4, 4) != 9 {
		t.Error("CompositeInto did not write the patch")
	}
	if dst.At(3, 3) != 0 {
		t.Error("CompositeInto wrote outside the patch")
	}
}

func TestCompositeFitsExactly(t *testing.T) {
	if _, err := Composite(ramp(4, 4), filled(8, 8, 0), image.Pt(4, 4)); err != nil {
		t.Errorf("Composite() at the last valid offset error = %v", err)
	}
}
