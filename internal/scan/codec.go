package scan

import (
	"math"
	"sort"
)

// CartesianPoint is a scan return in the sensor frame (meters).
type CartesianPoint struct {
	X float32
	Y float32
}

// PolarPoint is a scan return as range (meters) and bearing (radians).
// Radius is expected to be non-negative but is not checked. Theta lies in
// [-π, π] when produced by CartesianToPolar; otherwise it is whatever the
// producer supplied.
type PolarPoint struct {
	Radius float32
	Theta  float32
}

// CartesianToPolar converts p to range and bearing. Theta is atan2(y, x).
func CartesianToPolar(p CartesianPoint) PolarPoint {
	x, y := float64(p.X), float64(p.Y)
	return PolarPoint{
		Radius: float32(math.Hypot(x, y)),
		Theta:  float32(math.Atan2(y, x)),
	}
}

// PolarToCartesian converts p to sensor-frame x/y.
func PolarToCartesian(p PolarPoint) CartesianPoint {
	r, theta := float64(p.Radius), float64(p.Theta)
	sin, cos := math.Sincos(theta)
	return CartesianPoint{
		X: float32(r * cos),
		Y: float32(r * sin),
	}
}

// CartesianToPolarAll converts every point in src. Returns nil for empty input.
func CartesianToPolarAll(src []CartesianPoint) []PolarPoint {
	if len(src) == 0 {
		return nil
	}
	out := make([]PolarPoint, len(src))
	for i, p := range src {
		out[i] = CartesianToPolar(p)
	}
	return out
}

// PolarToCartesianAll converts every point in src. Returns nil for empty input.
func PolarToCartesianAll(src []PolarPoint) []CartesianPoint {
	if len(src) == 0 {
		return nil
	}
	out := make([]CartesianPoint, len(src))
	for i, p := range src {
		out[i] = PolarToCartesian(p)
	}
	return out
}

// SortByTheta sorts points ascending by bearing. Points with equal bearing
// keep their relative order.
func SortByTheta(points []PolarPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Theta < points[j].Theta
	})
}

// IsSortedByTheta reports whether points are non-decreasing in bearing.
func IsSortedByTheta(points []PolarPoint) bool {
	for i := 1; i < len(points); i++ {
		if points[i].Theta < points[i-1].Theta {
			return false
		}
	}
	return true
}
