package material

import (
	"math"

	"github.com/dcarlson/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two color sources in a solid 3D
// checkerboard pattern. The nested sources may themselves be checkers.
type CheckerTexture struct {
	Scale float64     // Edge length of one check in world units
	Even  ColorSource // Color for even cells
	Odd   ColorSource // Color for odd cells
}

// NewCheckerTexture creates a checker pattern from two solid colors
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{
		Scale: scale,
		Even:  NewSolidColor(even),
		Odd:   NewSolidColor(odd),
	}
}

// Evaluate selects a color by the parity of the 3D cell containing the point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	invScale := 1.0 / c.Scale
	x := int(math.Floor(point.X * invScale))
	y := int(math.Floor(point.Y * invScale))
	z := int(math.Floor(point.Z * invScale))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
