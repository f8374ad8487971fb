// Package scan owns the in-memory representation of a single 2D lidar sweep.
//
// Responsibilities: Cartesian ↔ polar point conversion, the dual-encoding
// Representation that derives one encoding from the other on demand, angular
// sorting, and the local-minimum range smoothing applied to polar reads.
// Key types: CartesianPoint, PolarPoint, Representation, MinRangeFilter.
//
// A Representation is owned by exactly one pipeline stage at a time and is
// not safe for concurrent use. No operation in this package performs I/O or
// returns an error.
package scan
