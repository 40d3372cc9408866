package perclearn

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same", Pt(1, 1), Pt(1, 1), 0},
		{"axis", Pt(0, 0), Pt(0, 4), 4},
		{"pythagorean", Pt(1, 2), Pt(4, 6), 5},
		{"negative", Pt(-1, -1), Pt(2, 3), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.want) > epsilon {
				t.Errorf("%v.Distance(%v) = %f, want %f", tt.p, tt.q, got, tt.want)
			}
		})
	}
}
