package geometry

import (
	"fmt"
	"math"

	"github.com/dcarlson/go-pathtracer/pkg/core"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Unit normal (computed from U × V)
	D      float64   // Plane equation constant: normal · point = d
	W      core.Vec3 // Cached vector for planar coordinate calculations
}

// NewQuad creates a new quad from a corner point and two edge vectors.
// Panics if the edge vectors are parallel or zero; a quad with no area is
// a construction bug, not a runtime condition.
func NewQuad(corner, u, v core.Vec3) *Quad {
	cross := u.Cross(v)
	if cross.NearZero() {
		panic(fmt.Sprintf("geometry: quad edges %v and %v span no area", u, v))
	}

	normal := cross.Normalize()

	// w projects a point on the plane into (alpha, beta) coordinates:
	// w = (u × v) / |u × v|²
	w := cross.Multiply(1.0 / cross.Dot(cross))

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(corner),
		W:      w,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tRange core.Interval, stats *TraceStats) (*core.HitRecord, bool) {
	stats.countQuadTest()

	// A ray parallel to the plane never intersects it
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !tRange.Contains(t) {
		return nil, false
	}

	// Project the hit point into the quad's (u, v) basis and reject hits
	// outside the unit square
	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:     t,
		Point: hitPoint,
		UV:    core.NewVec2(alpha, beta),
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this quad.
// The union of the two diagonal corner boxes pads the box along the
// quad's own plane, so a zero-thickness quad still gets a box that
// contains it without any numeric epsilon.
func (q *Quad) BoundingBox() core.AABB {
	diagonal1 := core.NewAABBFromPoints(q.Corner, q.Corner.Add(q.U).Add(q.V))
	diagonal2 := core.NewAABBFromPoints(q.Corner.Add(q.U), q.Corner.Add(q.V))
	return diagonal1.Union(diagonal2)
}
