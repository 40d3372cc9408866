// Package spectral provides the frequency-domain primitives used by noise
// synthesis: FFT-ordered frequency axes and 2D discrete Fourier transforms
// over gonum complex matrices.
package spectral

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// FrequencyAxis returns the sample frequencies of an n-point DFT in FFT order.
//
// The axis starts at the DC term and lists the non-negative frequencies
// 0, 1, ..., floor(n/2), followed by the negative frequencies
// -(ceil(n/2)-1), ..., -1. Every entry is divided by n.
//
// For n = 10 the axis is [0 .1 .2 .3 .4 .5 -.4 -.3 -.2 -.1].
func FrequencyAxis(n int) []float64 {
	axis := make([]float64, 0, max(n, 1))
	fn := float64(n)
	for k := 0; k <= n/2; k++ {
		axis = append(axis, float64(k)/fn)
	}
	for k := -((n+1)/2 - 1); k < 0; k++ {
		axis = append(axis, float64(k)/fn)
	}
	return axis
}

// FFT2 returns the unnormalized forward 2D DFT of src.
// src is not modified.
func FFT2(src *mat.CDense) *mat.CDense {
	return transform2(src, false)
}

// IFFT2 returns the inverse 2D DFT of src, normalized by 1/(rows*cols)
// so that IFFT2(FFT2(x)) == x.
// src is not modified.
func IFFT2(src *mat.CDense) *mat.CDense {
	dst := transform2(src, true)

	rows, cols := dst.Dims()
	scale := complex(1/float64(rows*cols), 0)
	raw := dst.RawCMatrix()
	for r := 0; r < rows; r++ {
		row := raw.Data[r*raw.Stride : r*raw.Stride+cols]
		for c := range row {
			row[c] *= scale
		}
	}
	return dst
}

// transform2 runs a 1D transform over every row, then over every column.
// gonum transforms are unnormalized in both directions.
func transform2(src *mat.CDense, inverse bool) *mat.CDense {
	rows, cols := src.Dims()

	dst := mat.NewCDense(rows, cols, nil)
	dst.Copy(src)
	raw := dst.RawCMatrix()

	rowFFT := fourier.NewCmplxFFT(cols)
	tmp := make([]complex128, cols)
	for r := 0; r < rows; r++ {
		row := raw.Data[r*raw.Stride : r*raw.Stride+cols]
		copy(tmp, row)
		if inverse {
			rowFFT.Sequence(tmp, tmp)
		} else {
			rowFFT.Coefficients(tmp, tmp)
		}
		copy(row, tmp)
	}

	colFFT := fourier.NewCmplxFFT(rows)
	col := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = raw.Data[r*raw.Stride+c]
		}
		if inverse {
			colFFT.Sequence(col, col)
		} else {
			colFFT.Coefficients(col, col)
		}
		for r := 0; r < rows; r++ {
			raw.Data[r*raw.Stride+c] = col[r]
		}
	}

	return dst
}
