package geometry

import "github.com/dcarlson/go-pathtracer/pkg/core"

// Shape interface for primitives that can be hit by rays. A false return
// is a miss and never carries a populated hit record. A nil stats pointer
// disables intersection counting.
type Shape interface {
	Hit(ray core.Ray, tRange core.Interval, stats *TraceStats) (*core.HitRecord, bool)
	BoundingBox() core.AABB
}
