// Package dataset reads and writes datasets of flattened square images
// for the perclearn command: CSV tables and directories of image files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	intImage "github.com/gogpu/perclearn/internal/image"
)

// Dataset errors.
var (
	// ErrEmpty is returned when a source holds no rows.
	ErrEmpty = errors.New("dataset: no rows")

	// ErrRagged is returned when rows differ in length or image size.
	ErrRagged = errors.New("dataset: rows differ in size")

	// ErrNotSquare is returned when a row cannot be viewed as a square image.
	ErrNotSquare = errors.New("dataset: row length is not a perfect square")
)

// imageExts lists the file extensions ReadImages picks up.
var imageExts = []string{".png", ".tif", ".tiff", ".jpg", ".jpeg"}

// Set is a dataset with an optional label per row.
type Set struct {
	// Data holds one flattened image per row.
	Data *mat.Dense

	// Labels is nil or has one entry per row of Data.
	Labels []string
}

// Rows returns the number of items.
func (s *Set) Rows() int {
	r, _ := s.Data.Dims()
	return r
}

// label returns the name used for row i when writing files.
// Labels that are not plain file names fall back to the index, so
// WriteImages never writes outside its directory.
func (s *Set) label(i int) string {
	if s.Labels != nil && validName(s.Labels[i]) {
		return s.Labels[i]
	}
	return fmt.Sprintf("%06d", i)
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// ReadCSV reads one image per record. When labeled is true the first field
// of each record is a label and the rest are pixel values.
func ReadCSV(r io.Reader, labeled bool) (*Set, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	var (
		data   []float64
		labels []string
		width  = -1
		rows   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read CSV: %w", err)
		}

		if labeled {
			labels = append(labels, rec[0])
			rec = rec[1:]
		}
		if width < 0 {
			width = len(rec)
		}
		if len(rec) != width || width == 0 {
			return nil, fmt.Errorf("%w: record %d has %d values, want %d", ErrRagged, rows+1, len(rec), width)
		}

		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: record %d field %d: %w", rows+1, j+1, err)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmpty
	}
	return &Set{Data: mat.NewDense(rows, width, data), Labels: labels}, nil
}

// WriteCSV writes one record per row, with the label first when present.
func WriteCSV(w io.Writer, s *Set) error {
	cw := csv.NewWriter(w)
	rows, cols := s.Data.Dims()

	rec := make([]string, 0, cols+1)
	for i := 0; i < rows; i++ {
		rec = rec[:0]
		if s.Labels != nil {
			rec = append(rec, s.Labels[i])
		}
		for j := 0; j < cols; j++ {
			rec = append(rec, strconv.FormatFloat(s.Data.At(i, j), 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write CSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: write CSV: %w", err)
	}
	return nil
}

// ReadImages loads every image file in dir, sorted by name, as one row
// each. All images must share the same size. Labels are the file names
// without extension.
func ReadImages(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read dir: %w", err)
	}

	var (
		data   []float64
		labels []string
		rows   int
		cols   int
		dims   [2]int
	)
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || !slices.Contains(imageExts, ext) {
			continue
		}

		m, err := intImage.Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", e.Name(), err)
		}
		h, w := m.Dims()
		if rows == 0 {
			dims = [2]int{h, w}
			cols = h * w
		} else if dims != [2]int{h, w} {
			return nil, fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrRagged, e.Name(), w, h, dims[1], dims[0])
		}

		data = append(data, m.RawMatrix().Data...)
		labels = append(labels, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		rows++
	}

	if rows == 0 {
		return nil, ErrEmpty
	}
	return &Set{Data: mat.NewDense(rows, cols, data), Labels: labels}, nil
}

// WriteImages writes each row of s into dir as a square grayscale image
// named after its label (or its index). ext selects the format (".png",
// ".tiff"); upscale > 1 enlarges the images for viewing.
func WriteImages(dir string, s *Set, ext string, upscale int) error {
	_, n := s.Data.Dims()
	side := int(math.Round(math.Sqrt(float64(n))))
	if side*side != n {
		return fmt.Errorf("%w: %d", ErrNotSquare, n)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("dataset: create dir: %w", err)
	}

	for i := 0; i < s.Rows(); i++ {
		item := mat.NewDense(side, side, mat.Row(nil, i, s.Data))
		img := intImage.Upscale(intImage.ToGray(item), upscale)
		if err := intImage.Save(filepath.Join(dir, s.label(i)+ext), img); err != nil {
			return err
		}
	}
	return nil
}
