package perclearn

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/perclearn/internal/spectral"
)

// Noise defaults.
const (
	// DefaultNoiseSize is the side length of a standalone noise field.
	DefaultNoiseSize = 56

	// DefaultBeta is the spectral exponent of pink noise.
	DefaultBeta = -1.0
)

// NoiseSpectrum returns the power spectral density grid S(f) = |f|^beta
// used by Noise, laid out in FFT order (DC term at (0, 0)).
//
// Infinite entries, which appear at the DC term for beta < 0, are set to 0.
func NoiseSpectrum(rows, cols int, beta float64) *mat.Dense {
	psd := mat.NewDense(rows, cols, nil)
	u := spectral.FrequencyAxis(rows)
	v := spectral.FrequencyAxis(cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := math.Pow(u[r]*u[r]+v[c]*v[c], beta/2)
			if math.IsInf(s, 0) {
				s = 0
			}
			psd.Set(r, c, s)
		}
	}
	return psd
}

// Noise generates a rows×cols field of 1/f spatial noise with spectral
// exponent beta: 0 is white noise, -1 pink noise, -2 Brownian noise.
//
// Every frequency component gets the amplitude sqrt(S(f)) and a phase drawn
// uniformly from rng in row-major order; the field is the real part of the
// inverse 2D DFT. The pattern is periodic in both directions.
//
// Non-positive dimensions panic.
func Noise(rng *rand.Rand, rows, cols int, beta float64) *mat.Dense {
	psd := NoiseSpectrum(rows, cols, beta)

	spectrum := mat.NewCDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			amp := math.Sqrt(psd.At(r, c))
			sin, cos := math.Sincos(2 * math.Pi * rng.Float64())
			spectrum.Set(r, c, complex(amp*cos, amp*sin))
		}
	}

	field := spectral.IFFT2(spectrum)

	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, real(field.At(r, c)))
		}
	}
	return out
}

// FractalDimension returns the fractal dimension D = (6+beta)/2 of a
// surface generated with spectral exponent beta.
func FractalDimension(beta float64) float64 {
	return (6 + beta) / 2
}
