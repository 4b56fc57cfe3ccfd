package geometry

// Tolerances are kept per use-case. They are not interchangeable: the SAT axis
// threshold is a squared length, the face threshold is a distance, and so on.
const (
	// ParallelAxisEpsilonSq is the squared length below which a cross-product
	// SAT axis is considered degenerate (near-parallel edges) and skipped.
	ParallelAxisEpsilonSq float32 = 1e-6

	// FaceTouchEpsilon is how far an impact point may sit from a box face and
	// still be attributed to that face when picking the impact normal.
	FaceTouchEpsilon float32 = 1e-4

	// ParallelRayEpsilon is the |dot(forward, normal)| below which a ray is
	// treated as parallel to a plane or slab.
	ParallelRayEpsilon float32 = 1e-6

	// NormalizeEpsilon is the length below which a vector has no usable direction.
	NormalizeEpsilon float32 = 1e-6

	// UnitLengthTolerance is the allowed deviation from 1 for vectors callers
	// promise are unit length.
	UnitLengthTolerance float32 = 1e-3
)
