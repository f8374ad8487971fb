package scan

// SmoothingMode selects how Polar reads apply the range smoothing filter.
type SmoothingMode string

const (
	// SmoothEveryRead filters the stored polar points in place on every
	// Polar call. Repeated reads therefore keep flattening the radii.
	SmoothEveryRead SmoothingMode = "every_read"

	// SmoothOnce keeps the stored polar points raw and caches one smoothed
	// view until the points or their ordering change.
	SmoothOnce SmoothingMode = "once"
)

// IsValid returns true if the mode is a known value.
func (m SmoothingMode) IsValid() bool {
	switch m {
	case SmoothEveryRead, SmoothOnce:
		return true
	default:
		return false
	}
}

// Neighbourhood selects how the smoothing filter finds angular neighbours.
type Neighbourhood string

const (
	// NeighbourhoodIndex walks outward by index and assumes angular order.
	NeighbourhoodIndex Neighbourhood = "index"

	// NeighbourhoodAngular finds neighbours by bearing regardless of order.
	NeighbourhoodAngular Neighbourhood = "angular"
)

// IsValid returns true if the neighbourhood is a known value.
func (n Neighbourhood) IsValid() bool {
	switch n {
	case NeighbourhoodIndex, NeighbourhoodAngular:
		return true
	default:
		return false
	}
}

// Config controls the smoothing behaviour of a Representation.
type Config struct {
	// AngularWindow is the smoothing half-width in radians.
	AngularWindow float32

	Smoothing     SmoothingMode
	Neighbourhood Neighbourhood

	// DebugChecks reports caller contract violations (false sortedness
	// claims, index smoothing of unsorted data) via monitoring.Debugf.
	// Results are identical with or without it.
	DebugChecks bool
}

// DefaultConfig returns the configuration matching the historical scan
// behaviour: a 0.5π/512 window, smoothing on every read, index neighbours.
func DefaultConfig() Config {
	return Config{
		AngularWindow: DefaultAngularWindow,
		Smoothing:     SmoothEveryRead,
		Neighbourhood: NeighbourhoodIndex,
	}
}

// normalized fills unset or unknown fields with defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if !(c.AngularWindow > 0) {
		c.AngularWindow = def.AngularWindow
	}
	if !c.Smoothing.IsValid() {
		c.Smoothing = def.Smoothing
	}
	if !c.Neighbourhood.IsValid() {
		c.Neighbourhood = def.Neighbourhood
	}
	return c
}

func (c Config) filter() MinRangeFilter {
	return MinRangeFilter{Window: c.AngularWindow}
}
