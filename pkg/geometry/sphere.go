package geometry

import (
	"fmt"
	"math"

	"github.com/dcarlson/go-pathtracer/pkg/core"
)

// selfIntersectEpsilon rejects roots so close to the ray origin that the
// ray would re-hit the surface it just left (shadow acne)
const selfIntersectEpsilon = 0.001

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. Panics if radius is not positive; a
// degenerate sphere is a construction bug, not a runtime condition.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval, stats *TraceStats) (*core.HitRecord, bool) {
	stats.countSphereTest()

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer root first, then the farther one. A root is accepted
	// only if it clears the self-intersection guard and lies in the
	// caller's valid range; the guard is checked explicitly rather than
	// relying on the range excluding small t.
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= selfIntersectEpsilon || !tRange.Contains(root) {
		root = (-halfB + sqrtD) / a
		if root <= selfIntersectEpsilon || !tRange.Contains(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.UV = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a unit vector on the sphere to surface coordinates.
// theta is the angle from the -Y pole, phi the angle around the Y axis
// measured so that u wraps seamlessly at the -X meridian.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABBFromPoints(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
