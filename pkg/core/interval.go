package core

import "math"

// Interval represents a closed numeric range [Min, Max], used to bound
// valid ray parameters and UV coordinates
type Interval struct {
	Min, Max float64
}

// Distinguished intervals. EmptyInterval contains nothing meaningful;
// ZeroInfinite is the canonical ray-parameter domain (no hits behind the
// ray origin).
var (
	EmptyInterval    = Interval{}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	ZeroInfinite     = Interval{Min: 0, Max: math.Inf(1)}
)

// NewInterval creates an interval from min and max bounds.
// Callers are responsible for supplying min <= max.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains returns true if val lies within the interval, inclusive both ends
func (i Interval) Contains(val float64) bool {
	return i.Min <= val && val <= i.Max
}

// Surrounds returns true if val lies strictly inside the interval
func (i Interval) Surrounds(val float64) bool {
	return i.Min < val && val < i.Max
}

// Clamp saturates val into [Min, Max]
func (i Interval) Clamp(val float64) float64 {
	if val < i.Min {
		return i.Min
	}
	if val > i.Max {
		return i.Max
	}
	return val
}

// Union returns the smallest interval containing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{
		Min: math.Min(i.Min, other.Min),
		Max: math.Max(i.Max, other.Max),
	}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}
