package perclearn

import (
	"context"
	"image"

	intImage "github.com/gogpu/perclearn/internal/image"
)

// Interpolation selects how Rotate resamples between pixel centers.
type Interpolation = intImage.InterpolationMode

// Interpolation modes accepted by WithInterpolation.
const (
	Nearest  Interpolation = intImage.InterpNearest
	Bilinear Interpolation = intImage.InterpBilinear
	Bicubic  Interpolation = intImage.InterpBicubic
)

// Edge selects what Rotate reads for samples that fall outside the source.
type Edge = intImage.EdgeMode

// Edge modes accepted by WithEdge.
const (
	// EdgeZero reads 0 outside the source.
	EdgeZero Edge = intImage.EdgeConstant

	// EdgeNearest repeats the nearest edge pixel.
	EdgeNearest Edge = intImage.EdgeClamp
)

// MaskOption configures the circular mask used by NewRadialMask and Composite.
type MaskOption func(*maskOptions)

type maskOptions struct {
	center    Point
	hasCenter bool
	radius    float64
	hasRadius bool
}

// WithCenter places the disk center at (x, y) in the foreground's pixel
// coordinates. Without it the center is (cols/2, rows/2), truncated.
func WithCenter(x, y float64) MaskOption {
	return func(o *maskOptions) {
		o.center = Pt(x, y)
		o.hasCenter = true
	}
}

// WithRadius sets the disk radius explicitly.
//
// Without it the radius is the distance from the center to the nearest
// image edge. WithRadius(0) is honored literally: only the pixel at the
// center lies inside the disk.
func WithRadius(r float64) MaskOption {
	return func(o *maskOptions) {
		o.radius = r
		o.hasRadius = true
	}
}

// RotateOption configures Rotate.
type RotateOption func(*rotateOptions)

type rotateOptions struct {
	interp Interpolation
	edge   Edge
}

func defaultRotateOptions() rotateOptions {
	return rotateOptions{interp: Bilinear, edge: EdgeZero}
}

// WithInterpolation selects the resampling filter. The default is Bilinear.
func WithInterpolation(m Interpolation) RotateOption {
	return func(o *rotateOptions) {
		o.interp = m
	}
}

// WithEdge selects the out-of-bounds behavior. The default is EdgeZero.
func WithEdge(e Edge) RotateOption {
	return func(o *rotateOptions) {
		o.edge = e
	}
}

// DatasetOption configures BuildDataset.
//
// Example:
//
//	out, err := perclearn.BuildDataset(rng, mnist,
//	    perclearn.WithOffsets(image.Pt(0, 0), image.Pt(28, 28)),
//	    perclearn.WithQuarterTurns(1),
//	)
type DatasetOption func(*datasetOptions)

type datasetOptions struct {
	offsets      []image.Point
	rotate       bool
	quarterTurns int
	hasTurns     bool
	beta         float64
	bgSize       int
	maskOpts     []MaskOption
	rotateOpts   []RotateOption
	progress     func(done, total int)
	workers      int
	ctx          context.Context
}

func defaultDatasetOptions() datasetOptions {
	return datasetOptions{
		offsets: []image.Point{{}},
		beta:    DefaultBeta,
		ctx:     context.Background(),
	}
}

// WithOffsets sets the candidate offsets; each item picks one uniformly.
// The default is a single offset at the origin.
func WithOffsets(offsets ...image.Point) DatasetOption {
	return func(o *datasetOptions) {
		o.offsets = append([]image.Point(nil), offsets...)
	}
}

// WithRotation rotates every item by a uniformly random whole-degree angle
// in [0, 360).
func WithRotation() DatasetOption {
	return func(o *datasetOptions) {
		o.rotate = true
	}
}

// WithQuarterTurns rotates every item by k*90 degrees. It implies rotation.
func WithQuarterTurns(k int) DatasetOption {
	return func(o *datasetOptions) {
		o.rotate = true
		o.quarterTurns = k
		o.hasTurns = true
	}
}

// WithBeta sets the spectral exponent of the noise backgrounds.
// The default is DefaultBeta (pink noise).
func WithBeta(beta float64) DatasetOption {
	return func(o *datasetOptions) {
		o.beta = beta
	}
}

// WithBackgroundSize sets the side length of the square noise background.
// The default is twice the item side, so rows grow from N to 4N.
func WithBackgroundSize(n int) DatasetOption {
	return func(o *datasetOptions) {
		o.bgSize = n
	}
}

// WithMaskOptions passes mask options to every composition.
// The default uses the automatic center and radius.
func WithMaskOptions(opts ...MaskOption) DatasetOption {
	return func(o *datasetOptions) {
		o.maskOpts = append(o.maskOpts, opts...)
	}
}

// WithRotateOptions passes rotate options to every rotation.
func WithRotateOptions(opts ...RotateOption) DatasetOption {
	return func(o *datasetOptions) {
		o.rotateOpts = append(o.rotateOpts, opts...)
	}
}

// WithProgress registers a callback invoked after each item is written.
func WithProgress(fn func(done, total int)) DatasetOption {
	return func(o *datasetOptions) {
		o.progress = fn
	}
}

// WithWorkers augments items on n goroutines. Values of 0 or 1 keep the
// sequential order in which rng is consumed; see BuildDataset.
func WithWorkers(n int) DatasetOption {
	return func(o *datasetOptions) {
		o.workers = n
	}
}

// WithContext stops BuildDataset before the next item once ctx is done.
// BuildDataset then returns ctx.Err().
func WithContext(ctx context.Context) DatasetOption {
	return func(o *datasetOptions) {
		o.ctx = ctx
	}
}
