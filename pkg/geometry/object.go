package geometry

import "github.com/dcarlson/go-pathtracer/pkg/core"

// Object pairs a shape with a material, forming the unit the renderer
// queries. It adds no logic of its own beyond delegation.
type Object struct {
	Shape    Shape
	Material core.Material
}

// NewObject creates a new object from a shape and a material
func NewObject(shape Shape, material core.Material) *Object {
	return &Object{Shape: shape, Material: material}
}

// CheckCollision tests the ray against the object's shape. Callers pass
// core.ZeroInfinite for the canonical ray-parameter domain, or a shrunken
// range when a closer hit is already known.
func (o *Object) CheckCollision(ray core.Ray, tRange core.Interval, stats *TraceStats) (*core.HitRecord, bool) {
	return o.Shape.Hit(ray, tRange, stats)
}

// ScatterRay asks the object's material to scatter a ray that produced
// the given hit record
func (o *Object) ScatterRay(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return o.Material.Scatter(rayIn, hit, sampler)
}

// BoundingBox returns the bounding box of the object's shape
func (o *Object) BoundingBox() core.AABB {
	return o.Shape.BoundingBox()
}
