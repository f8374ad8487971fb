package scan

import (
	"math"
	"sort"
)

// DefaultAngularWindow is the half-width (radians) of the neighbourhood used
// by the range smoothing filter: a quarter turn split into 512 steps.
const DefaultAngularWindow = float32(0.5 * math.Pi / 512)

// MinRangeFilter replaces each radius with the smallest radius found within
// Window radians of its bearing. Taking the minimum suppresses single-sample
// range spikes while never reporting an obstacle further away than observed.
type MinRangeFilter struct {
	Window float32
}

// DefaultMinRangeFilter returns a filter using DefaultAngularWindow.
func DefaultMinRangeFilter() MinRangeFilter {
	return MinRangeFilter{Window: DefaultAngularWindow}
}

// Apply smooths points in place.
//
// Precondition: points are angularly contiguous (sorted by theta). The scan
// walks outward from each index and stops at the first neighbour outside the
// window in each direction, so unsorted input yields a narrower, less
// meaningful neighbourhood rather than an error. Use ApplyUnordered when the
// ordering is not known.
func (f MinRangeFilter) Apply(points []PolarPoint) {
	if len(points) == 0 {
		return
	}
	src := make([]PolarPoint, len(points))
	copy(src, points)
	f.scan(src, func(i int, r float32) { points[i].Radius = r })
}

// ApplyUnordered smooths points in place without relying on their order.
// Neighbourhoods are found on a theta-sorted view and written back to the
// original positions. On sorted input it produces the same radii as Apply.
func (f MinRangeFilter) ApplyUnordered(points []PolarPoint) {
	if len(points) == 0 {
		return
	}
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return points[order[a]].Theta < points[order[b]].Theta
	})

	sorted := make([]PolarPoint, len(points))
	for k, idx := range order {
		sorted[k] = points[idx]
	}
	f.scan(sorted, func(k int, r float32) { points[order[k]].Radius = r })
}

// scan computes the windowed minimum for each index of src and hands it to
// set. src is never modified.
func (f MinRangeFilter) scan(src []PolarPoint, set func(i int, r float32)) {
	window := float64(f.Window)
	for i := range src {
		theta := float64(src[i].Theta)
		minR := src[i].Radius

		for j := i - 1; j >= 0; j-- {
			if math.Abs(float64(src[j].Theta)-theta) > window {
				break
			}
			minR = minRange(minR, src[j].Radius)
		}
		for j := i + 1; j < len(src); j++ {
			if math.Abs(float64(src[j].Theta)-theta) > window {
				break
			}
			minR = minRange(minR, src[j].Radius)
		}
		set(i, minR)
	}
}

// minRange returns the smaller of a and b, ignoring a NaN argument. A NaN
// range marks a dropped return and must not mask its neighbours.
func minRange(a, b float32) float32 {
	switch {
	case math.IsNaN(float64(b)):
		return a
	case math.IsNaN(float64(a)):
		return b
	default:
		return min(a, b)
	}
}
