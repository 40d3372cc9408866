package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const epsilon = 1e-10

func TestFrequencyAxis(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{"one", 1, []float64{0}},
		{"two", 2, []float64{0, 0.5}},
		{"even", 10, []float64{0, .1, .2, .3, .4, .5, -.4, -.3, -.2, -.1}},
		{"odd", 5, []float64{0, .2, .4, -.4, -.2}},
		{"odd-large", 11, []float64{
			0, 1. / 11, 2. / 11, 3. / 11, 4. / 11, 5. / 11,
			-5. / 11, -4. / 11, -3. / 11, -2. / 11, -1. / 11,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrequencyAxis(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("FrequencyAxis(%d) len = %d, want %d", tt.n, len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > epsilon {
					t.Errorf("FrequencyAxis(%d)[%d] = %f, want %f", tt.n, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFrequencyAxisLength(t *testing.T) {
	for n := 1; n <= 64; n++ {
		if got := len(FrequencyAxis(n)); got != n {
			t.Errorf("len(FrequencyAxis(%d)) = %d", n, got)
		}
	}
}

func TestIFFT2RoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {5, 3}, {1, 7}, {8, 6}} {
		rows, cols := dims[0], dims[1]
		src := mat.NewCDense(rows, cols, nil)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				src.Set(r, c, complex(float64(r*cols+c)*0.25-1, float64(c-r)))
			}
		}

		got := IFFT2(FFT2(src))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if cmplx.Abs(got.At(r, c)-src.At(r, c)) > 1e-9 {
					t.Errorf("%dx%d: round trip (%d,%d) = %v, want %v",
						rows, cols, r, c, got.At(r, c), src.At(r, c))
				}
			}
		}
	}
}

func TestIFFT2DCOnly(t *testing.T) {
	// A lone DC coefficient of 1 becomes a flat field of 1/(rows*cols).
	spectrum := mat.NewCDense(4, 5, nil)
	spectrum.Set(0, 0, 1)

	got := IFFT2(spectrum)
	want := 1.0 / 20
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			v := got.At(r, c)
			if math.Abs(real(v)-want) > epsilon || math.Abs(imag(v)) > epsilon {
				t.Errorf("IFFT2 DC (%d,%d) = %v, want %v", r, c, v, want)
			}
		}
	}
}

func TestFFT2DoesNotModifySource(t *testing.T) {
	src := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	_ = FFT2(src)
	_ = IFFT2(src)

	want := []complex128{1, 2, 3, 4}
	for i, w := range want {
		if got := src.At(i/2, i%2); got != w {
			t.Errorf("source (%d,%d) = %v, want %v", i/2, i%2, got, w)
		}
	}
}

func TestFFT2KnownValues(t *testing.T) {
	// Sum of all entries lands on the DC coefficient.
	src := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	got := FFT2(src)

	want := []complex128{10, -2, -4, 0}
	for i, w := range want {
		if cmplx.Abs(got.At(i/2, i%2)-w) > epsilon {
			t.Errorf("FFT2 (%d,%d) = %v, want %v", i/2, i%2, got.At(i/2, i%2), w)
		}
	}
}
