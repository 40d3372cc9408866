package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"gonum.org/v1/gonum/mat"

	// Register JPEG so Decode accepts it alongside PNG and TIFF.
	_ "image/jpeg"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// FromImage converts img to a grid of 8-bit luminance values in [0, 255].
// Row 0 is the top of the image.
func FromImage(img image.Image) (*mat.Dense, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	m := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			m.Set(y, x, float64(g.Y))
		}
	}
	return m, nil
}

// ToGray converts a grid to an 8-bit grayscale image.
// Values are rounded and clamped to [0, 255]; NaN becomes 0.
func ToGray(m mat.Matrix) *image.Gray {
	rows, cols := m.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Pix[y*img.Stride+x] = toByte(m.At(y, x))
		}
	}
	return img
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// Upscale enlarges img by an integer factor using Catmull-Rom resampling.
// A factor below 2 returns img unchanged.
func Upscale(img *image.Gray, factor int) *image.Gray {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Decode reads a PNG, JPEG or TIFF image from r as a luminance grid.
func Decode(r io.Reader) (*mat.Dense, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromImage(img)
}

// Load reads the image file at path as a luminance grid.
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeTIFF writes img to w in deflate-compressed TIFF format.
func EncodeTIFF(w io.Writer, img image.Image) error {
	if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return fmt.Errorf("image: encode TIFF: %w", err)
	}
	return nil
}

// Save writes img to path, choosing the encoder from the file extension
// (.png, .tif, .tiff).
func Save(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = EncodePNG
	case ".tif", ".tiff":
		encode = EncodeTIFF
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
