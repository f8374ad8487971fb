package scan

import (
	"time"

	"github.com/banshee-data/navscan/internal/monitoring"
	"github.com/banshee-data/navscan/internal/timeutil"
)

// Encoding identifies which point encoding of a scan is authoritative.
type Encoding uint8

const (
	// EncodingNone means no producer has set or appended points yet.
	EncodingNone Encoding = iota
	// EncodingCartesian means the x/y points are the source of truth.
	EncodingCartesian
	// EncodingPolar means the range/bearing points are the source of truth.
	EncodingPolar
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingCartesian:
		return "cartesian"
	case EncodingPolar:
		return "polar"
	default:
		return "none"
	}
}

// Representation holds one lidar sweep in either Cartesian or polar form and
// derives the other form when it is read.
//
// Exactly one encoding is authoritative: the one last set or appended by a
// producer. Reading the other encoding materializes it from the
// authoritative points and keeps it as a cache (derived) until the next
// producer mutation, which drops it. sortedByAngle is true only while the
// polar points are ascending by theta.
//
// A Representation is not safe for concurrent use.
type Representation struct {
	captureTime time.Time

	cartesian []CartesianPoint
	polar     []PolarPoint

	authoritative Encoding
	derived       bool
	sortedByAngle bool

	// smoothed caches the filtered polar view under SmoothOnce.
	smoothed      []PolarPoint
	smoothedValid bool

	cfg Config
}

// New returns an empty Representation using DefaultConfig.
func New() *Representation {
	return &Representation{cfg: DefaultConfig()}
}

// NewAt returns an empty Representation captured at t.
func NewAt(t time.Time) *Representation {
	r := New()
	r.captureTime = t
	return r
}

// FromCartesian returns a Representation whose Cartesian points are a copy
// of points, captured at t.
func FromCartesian(points []CartesianPoint, t time.Time) *Representation {
	r := NewAt(t)
	r.SetCartesian(points)
	return r
}

// FromPolar returns a Representation whose polar points are a copy of
// points, captured at t. The points are not assumed to be sorted.
func FromPolar(points []PolarPoint, t time.Time) *Representation {
	r := NewAt(t)
	r.SetPolar(points, false)
	return r
}

// Config returns the active configuration.
func (r *Representation) Config() Config {
	return r.cfg
}

// SetConfig replaces the configuration. Unset fields fall back to
// DefaultConfig values.
func (r *Representation) SetConfig(cfg Config) {
	r.cfg = cfg.normalized()
	r.invalidateSmoothed()
}

// CaptureTime returns the time the sweep was captured.
func (r *Representation) CaptureTime() time.Time {
	return r.captureTime
}

// SetCaptureTime sets the time the sweep was captured.
func (r *Representation) SetCaptureTime(t time.Time) {
	r.captureTime = t
}

// Age returns the time elapsed since capture according to clock.
func (r *Representation) Age(clock timeutil.Clock) time.Duration {
	return clock.Since(r.captureTime)
}

// Authoritative returns the encoding that producers last wrote.
func (r *Representation) Authoritative() Encoding {
	return r.authoritative
}

// SortedByAngle reports whether the polar points are known to be ascending
// by theta.
func (r *Representation) SortedByAngle() bool {
	return r.sortedByAngle
}

// SetCartesian replaces the Cartesian points with a copy of points and drops
// any polar points.
func (r *Representation) SetCartesian(points []CartesianPoint) {
	r.cartesian = append(r.cartesian[:0], points...)
	r.polar = r.polar[:0]
	r.authoritative = EncodingCartesian
	r.derived = false
	r.invalidateSmoothed()
}

// SetPolar replaces the polar points with a copy of points and drops any
// Cartesian points. assumeSorted records the caller's claim that points are
// ascending by theta; it is trusted, not verified.
func (r *Representation) SetPolar(points []PolarPoint, assumeSorted bool) {
	r.polar = append(r.polar[:0], points...)
	r.cartesian = r.cartesian[:0]
	r.authoritative = EncodingPolar
	r.derived = false
	r.sortedByAngle = assumeSorted
	r.invalidateSmoothed()

	if r.cfg.DebugChecks && assumeSorted && !IsSortedByTheta(r.polar) {
		monitoring.Debugf("[scan] SetPolar: %d points claimed sorted but are not ascending by theta", len(r.polar))
	}
}

// AppendCartesian appends p to the Cartesian points and drops any polar
// points. A Cartesian cache derived from polar data becomes authoritative.
func (r *Representation) AppendCartesian(p CartesianPoint) {
	r.cartesian = append(r.cartesian, p)
	r.polar = r.polar[:0]
	r.authoritative = EncodingCartesian
	r.derived = false
	r.sortedByAngle = false
	r.invalidateSmoothed()
}

// AppendPolar appends p to the polar points and drops any Cartesian points.
// A polar cache derived from Cartesian data becomes authoritative. inOrder
// records the caller's claim that the points, p included, remain ascending
// by theta.
func (r *Representation) AppendPolar(p PolarPoint, inOrder bool) {
	r.polar = append(r.polar, p)
	r.cartesian = r.cartesian[:0]
	r.authoritative = EncodingPolar
	r.derived = false
	r.sortedByAngle = inOrder
	r.invalidateSmoothed()

	if r.cfg.DebugChecks && inOrder && !IsSortedByTheta(r.polar) {
		monitoring.Debugf("[scan] AppendPolar: theta=%.6f claimed in order but breaks ascending order", p.Theta)
	}
}

// Cartesian returns a copy of the Cartesian points, converting and caching
// them from the polar points if needed. The polar points are kept.
func (r *Representation) Cartesian() []CartesianPoint {
	if len(r.cartesian) == 0 && len(r.polar) > 0 {
		for _, p := range r.polar {
			r.cartesian = append(r.cartesian, PolarToCartesian(p))
		}
		r.derived = true
	}
	if len(r.cartesian) == 0 {
		return nil
	}
	out := make([]CartesianPoint, len(r.cartesian))
	copy(out, r.cartesian)
	return out
}

// Polar returns a copy of the range-smoothed polar points, converting and
// caching them from the Cartesian points if needed. When needSort is true
// and the points are not known to be sorted they are stably sorted by theta
// first. The Cartesian points are kept.
//
// Under SmoothEveryRead the stored radii are overwritten by each call, so
// successive reads are not idempotent.
func (r *Representation) Polar(needSort bool) []PolarPoint {
	if len(r.polar) == 0 && len(r.cartesian) > 0 {
		for _, p := range r.cartesian {
			r.polar = append(r.polar, CartesianToPolar(p))
		}
		r.derived = true
		r.sortedByAngle = false
		r.invalidateSmoothed()
	}
	if needSort && !r.sortedByAngle {
		SortByTheta(r.polar)
		r.sortedByAngle = true
		r.invalidateSmoothed()
	}
	if len(r.polar) == 0 {
		return nil
	}

	view := r.smooth()
	out := make([]PolarPoint, len(view))
	copy(out, view)
	return out
}

// smooth applies the range filter according to the configured mode and
// returns the slice holding the smoothed points.
func (r *Representation) smooth() []PolarPoint {
	switch r.cfg.Smoothing {
	case SmoothOnce:
		if !r.smoothedValid {
			r.smoothed = append(r.smoothed[:0], r.polar...)
			r.applyFilter(r.smoothed)
			r.smoothedValid = true
		}
		return r.smoothed
	default:
		r.applyFilter(r.polar)
		return r.polar
	}
}

func (r *Representation) applyFilter(points []PolarPoint) {
	f := r.cfg.filter()
	if r.cfg.Neighbourhood == NeighbourhoodAngular {
		f.ApplyUnordered(points)
		return
	}
	if r.cfg.DebugChecks && !r.sortedByAngle && !IsSortedByTheta(points) {
		monitoring.Debugf("[scan] smoothing %d unsorted polar points with index neighbourhood", len(points))
	}
	f.Apply(points)
}

func (r *Representation) invalidateSmoothed() {
	r.smoothed = r.smoothed[:0]
	r.smoothedValid = false
}

// Size returns the number of points in the scan. The Cartesian side is
// counted when it is populated, otherwise the polar side.
func (r *Representation) Size() int {
	if len(r.cartesian) > 0 {
		return len(r.cartesian)
	}
	return len(r.polar)
}

// Clear removes all points and resets the sort state. The capture time and
// configuration are kept.
func (r *Representation) Clear() {
	r.cartesian = r.cartesian[:0]
	r.polar = r.polar[:0]
	r.authoritative = EncodingNone
	r.derived = false
	r.sortedByAngle = false
	r.invalidateSmoothed()
}

// Reserve ensures both encodings can hold n points without reallocating.
func (r *Representation) Reserve(n int) {
	if cap(r.cartesian) < n {
		grown := make([]CartesianPoint, len(r.cartesian), n)
		copy(grown, r.cartesian)
		r.cartesian = grown
	}
	if cap(r.polar) < n {
		grown := make([]PolarPoint, len(r.polar), n)
		copy(grown, r.polar)
		r.polar = grown
	}
}

// Derived reports whether the non-authoritative encoding is currently
// materialized as a cache.
func (r *Representation) Derived() bool {
	return r.derived
}
