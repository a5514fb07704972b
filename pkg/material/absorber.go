package material

import "github.com/dcarlson/go-pathtracer/pkg/core"

// Absorber declines every scatter, terminating any ray path that hits it.
// Useful for unlit or invisible surfaces.
type Absorber struct{}

// NewAbsorber creates a material that absorbs all incoming rays
func NewAbsorber() *Absorber {
	return &Absorber{}
}

// Scatter always declines
func (a *Absorber) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
