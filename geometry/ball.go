package geometry

import (
	"math"
	"sync"
)

// MaxDimension is the largest supported dimensionality. Above 452 the
// volume of the unit ball underflows to 0.0 in float64, which breaks
// the volume-minimization objective used during insertion.
const MaxDimension = 452

var (
	tableOnce    sync.Once
	logGammaTerm [MaxDimension + 1]float64
	piTerm       [MaxDimension + 1]float64
)

// initTables fills the constant tables used by hypervolume computation.
// The terms depend only on the dimension, so they are computed once per
// process and are read-only afterwards.
func initTables() {
	for d := 1; d <= MaxDimension; d++ {
		lg, _ := math.Lgamma(1 + float64(d)/2)
		logGammaTerm[d] = lg
		piTerm[d] = (float64(d) / 2) * math.Log(math.Pi)
	}
}

// Ball is a hypersphere value: a centre vector, a radius and the cached
// hypervolume of the enclosed region. Balls are immutable; operations
// that change centre or radius return a new Ball.
type Ball struct {
	Centre []float64
	Radius float64
	Volume float64
}

// NewBall returns a Ball with the given centre and radius. The centre
// slice is not copied; callers must not mutate it afterwards.
// The dimension must be in [1, MaxDimension].
func NewBall(centre []float64, radius float64) Ball {
	tableOnce.Do(initTables)
	return Ball{
		Centre: centre,
		Radius: radius,
		Volume: hypervolume(radius, len(centre)),
	}
}

// NewPoint returns a zero-radius Ball centred at the given location.
// A point has volume exactly 0.
func NewPoint(location []float64) Ball {
	return NewBall(location, 0)
}

// WithRadius returns a copy of b with the given radius and a
// recomputed volume. The centre is shared.
func (b Ball) WithRadius(radius float64) Ball {
	return NewBall(b.Centre, radius)
}

// hypervolume computes the volume of a dim-dimensional ball in
// log-space, as the components grow far beyond float64 range as the
// dimension increases:
//
//	V = exp((dim/2)·lnπ + dim·ln(r) − lnΓ(1 + dim/2))
//
// For radius 0 this yields exp(-Inf) = 0 exactly, never NaN.
func hypervolume(radius float64, dim int) float64 {
	return math.Exp(piTerm[dim] + float64(dim)*math.Log(radius) - logGammaTerm[dim])
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b []float64) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Encloses reports whether b strictly encloses inner: b's radius must
// be at least inner's, and the squared radius difference must exceed
// the squared distance between the centres. Two identical balls do not
// enclose each other; both insertion's duplicate detection and the
// growth-repair early exit rely on this boundary being excluded.
func (b Ball) Encloses(inner Ball) bool {
	radiusDiff := b.Radius - inner.Radius
	if radiusDiff < 0 {
		return false
	}
	return radiusDiff*radiusDiff > SquaredDistance(b.Centre, inner.Centre)
}

// Contains reports whether the point lies within b (surface included).
func (b Ball) Contains(point []float64) bool {
	return SquaredDistance(b.Centre, point) <= b.Radius*b.Radius
}

// NearestDistanceToCentre returns the smallest possible distance from
// query to any point inside b. It is negative when query lies inside
// b; searches use it only as a branch-and-bound lower bound.
func (b Ball) NearestDistanceToCentre(query []float64) float64 {
	return Distance(b.Centre, query) - b.Radius
}

// BoundingBall returns the smallest ball enclosing both a and b. When
// one already encloses the other the result is a copy of the enclosing
// ball. Otherwise the new centre lies on the line between the two
// centres, shifted toward the larger ball, and the radius is
// (centreDistance + a.Radius + b.Radius)/2.
func BoundingBall(a, b Ball) Ball {
	if a.Encloses(b) {
		return a
	}
	if b.Encloses(a) {
		return b
	}

	dim := len(a.Centre)
	centre := make([]float64, dim)
	centreDiff := make([]float64, dim)
	radiusDiff := a.Radius - b.Radius

	var centreDistance float64
	for i := 0; i < dim; i++ {
		centreDiff[i] = a.Centre[i] - b.Centre[i]
		centreDistance += centreDiff[i] * centreDiff[i]
	}
	centreDistance = math.Sqrt(centreDistance)

	// Coincident centres reach this point only with equal radii, where
	// either input already is the bound. Skipping the general formula
	// avoids a 0/0 on the centre shift.
	if centreDistance == 0 {
		return a
	}

	for i := 0; i < dim; i++ {
		centre[i] = ((a.Centre[i] + b.Centre[i]) + (centreDiff[i]/centreDistance)*radiusDiff) / 2
	}

	return NewBall(centre, (centreDistance+a.Radius+b.Radius)/2)
}
