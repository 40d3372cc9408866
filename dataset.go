package perclearn

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/perclearn/internal/parallel"
)

// ItemSide returns the side length of the square images stored as rows of
// length n, or ErrNotSquare.
func ItemSide(n int) (int, error) {
	side := int(math.Round(math.Sqrt(float64(n))))
	if n <= 0 || side*side != n {
		return 0, fmt.Errorf("%w: %d", ErrNotSquare, n)
	}
	return side, nil
}

// Item returns row i of dataset reshaped into a square image.
func Item(dataset mat.Matrix, i int) (*mat.Dense, error) {
	_, n := dataset.Dims()
	side, err := ItemSide(n)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(side, side, mat.Row(nil, i, dataset)), nil
}

// BuildDataset augments every row of dataset, a matrix whose rows are
// flattened square images, and returns the augmented rows.
//
// For each item, in order, BuildDataset
//  1. optionally rotates it (WithRotation, WithQuarterTurns),
//  2. draws a square pink-noise background rescaled to [0, 255],
//  3. picks one of the candidate offsets uniformly,
//  4. composites the item onto the background with the default radial mask,
//
// and stores the flattened frame as the output row. With the default
// background of twice the item side, an M×N dataset yields M×4N.
//
// All randomness comes from rng and is consumed in a fixed order, so a
// generator seeded the same way reproduces the output exactly. With
// WithWorkers(n > 1) items run concurrently, each on a generator seeded
// from rng; the output is still reproducible but differs from the
// sequential one.
//
// WithContext makes the build cancellable between items.
func BuildDataset(rng *rand.Rand, dataset mat.Matrix, opts ...DatasetOption) (*mat.Dense, error) {
	o := defaultDatasetOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.offsets) == 0 {
		return nil, ErrNoOffsets
	}

	m, n := dataset.Dims()
	side, err := ItemSide(n)
	if err != nil {
		return nil, err
	}

	bg := o.bgSize
	if bg == 0 {
		bg = 2 * side
	}
	if bg < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, bg)
	}

	log := Logger()
	log.Info("building dataset",
		"items", m, "side", side, "background", bg,
		"offsets", len(o.offsets), "rotate", o.rotate, "workers", o.workers)

	out := mat.NewDense(m, bg*bg, nil)
	b := &builder{opts: &o, dataset: dataset, out: out, items: m, side: side, bg: bg}

	if o.workers <= 1 {
		for i := 0; i < m; i++ {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
			if err := b.item(rng, i); err != nil {
				return nil, err
			}
		}
	} else if err := b.pooled(rng, m); err != nil {
		return nil, err
	}

	log.Info("dataset built", "items", m, "row_length", bg*bg)
	return out, nil
}

// builder holds the state shared by the items of one BuildDataset call.
type builder struct {
	opts    *datasetOptions
	dataset mat.Matrix
	out     *mat.Dense
	items   int
	side    int
	bg      int

	mu   sync.Mutex
	done int
}

// item augments row i of the dataset into row i of the output.
// Draw order: rotation angle, background, offset.
func (b *builder) item(rng *rand.Rand, i int) error {
	o := b.opts
	item := mat.NewDense(b.side, b.side, mat.Row(nil, i, b.dataset))

	var angle float64
	if o.rotate {
		if o.hasTurns {
			angle = float64(o.quarterTurns * 90)
			item = Rotate(item, angle, o.rotateOpts...)
		} else {
			item, angle = RotateRandom(rng, item, o.rotateOpts...)
		}
	}

	frame := Scale255(Noise(rng, b.bg, b.bg, o.beta))
	offset := o.offsets[rng.IntN(len(o.offsets))]

	if err := CompositeInto(frame, item, offset, o.maskOpts...); err != nil {
		return fmt.Errorf("item %d: %w", i, err)
	}
	b.out.SetRow(i, flatten(frame))

	Logger().Debug("dataset item", "index", i, "angle", angle, "offset", offset)
	if o.progress != nil {
		b.mu.Lock()
		b.done++
		o.progress(b.done, b.items)
		b.mu.Unlock()
	}
	return nil
}

// pooled augments m items on a worker pool. Each item gets its own
// generator seeded from rng in item order, so the output depends on the
// seed but not on the number of workers or on scheduling.
func (b *builder) pooled(rng *rand.Rand, m int) error {
	pool := parallel.NewPool(b.opts.workers)
	defer pool.Close()

	ctx := b.opts.ctx
	errs := make([]error, m)
	tasks := make([]func(), m)
	for i := range tasks {
		child := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		tasks[i] = func() {
			if ctx.Err() != nil {
				return
			}
			errs[i] = b.item(child, i)
		}
	}
	if err := pool.Run(tasks); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return errors.Join(errs...)
}

// flatten returns the elements of m in row-major order.
func flatten(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	raw := m.RawMatrix()
	if raw.Stride == cols {
		return raw.Data[:rows*cols]
	}
	data := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		data = append(data, raw.Data[r*raw.Stride:r*raw.Stride+cols]...)
	}
	return data
}
