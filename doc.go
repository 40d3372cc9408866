// Package perclearn synthesizes augmented image datasets for visual
// experiments.
//
// # Overview
//
// Each item of a dataset is placed on a fresh 1/f noise background and
// blended into it through a circular, radially faded mask, optionally after
// a rotation. The building blocks are exposed individually:
//
//   - Noise: 1/f spatial noise built in the frequency domain
//   - ScaleRange: affine rescaling of a field onto [lo, hi]
//   - NewRadialMask: the disk and fade weights used for blending
//   - Composite: foreground onto background through the radial mask
//   - Rotate: rotation about the image center with interpolation
//   - BuildDataset: the batch pipeline tying the above together
//
// # Quick Start
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//
//	// One pink-noise background, rescaled to pixel range
//	bg := perclearn.Scale255(perclearn.Noise(rng, 56, 56, perclearn.DefaultBeta))
//
//	// A whole dataset: M rows of 28*28 pixels become M rows of 56*56
//	out, err := perclearn.BuildDataset(rng, mnist,
//	    perclearn.WithOffsets(image.Pt(0, 0), image.Pt(14, 14), image.Pt(28, 28)),
//	    perclearn.WithRotation(),
//	)
//
// # Data Layout
//
// Fields and images are gonum *mat.Dense values. Row index is y and column
// index is x, with the origin at the top-left. A dataset is a matrix whose
// rows are row-major flattened square images.
//
// # Randomness
//
// Every randomized function takes an explicit *rand.Rand. There is no
// package-level generator; seeding the generator fixes the output bit for
// bit. BuildDataset with WithWorkers spreads items over goroutines, giving
// each item its own generator seeded from the caller's.
//
// # Numeric Edge Cases
//
// Degenerate input is not converted to errors. A constant field passed to
// ScaleRange becomes NaN, and zero-sized grids panic inside gonum.
// Geometry that cannot work, such as a foreground that does not fit its
// background, is reported as an error.
package perclearn

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
