package core

import "math"

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB is the sentinel box enclosing nothing. It is the identity
// element for Union.
var EmptyAABB = AABB{}

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates the minimal AABB enclosing two corner points.
// The points may be given in any order.
func NewAABBFromPoints(p0, p1 Vec3) AABB {
	return AABB{
		X: Interval{Min: math.Min(p0.X, p1.X), Max: math.Max(p0.X, p1.X)},
		Y: Interval{Min: math.Min(p0.Y, p1.Y), Max: math.Max(p0.Y, p1.Y)},
		Z: Interval{Min: math.Min(p0.Z, p1.Z), Max: math.Max(p0.Z, p1.Z)},
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	if aabb == EmptyAABB {
		return other
	}
	if other == EmptyAABB {
		return aabb
	}
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// AxisInterval returns the interval for the given axis (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return Vec3{
		X: (aabb.X.Min + aabb.X.Max) * 0.5,
		Y: (aabb.Y.Min + aabb.Y.Max) * 0.5,
		Z: (aabb.Z.Min + aabb.Z.Max) * 0.5,
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tRange Interval) bool {
	tMin, tMax := tRange.Min, tRange.Max

	for axis := 0; axis < 3; axis++ {
		var origin, direction float64
		slab := aabb.AxisInterval(axis)

		switch axis {
		case 0:
			origin = ray.Origin.X
			direction = ray.Direction.X
		case 1:
			origin = ray.Origin.Y
			direction = ray.Direction.Y
		case 2:
			origin = ray.Origin.Z
			direction = ray.Direction.Z
		}

		// A parallel ray hits only if its origin lies inside the slab
		if math.Abs(direction) < 1e-8 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (slab.Min - origin) * invDirection
		t2 := (slab.Max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
