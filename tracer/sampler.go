package tracer

import (
	"math/rand"

	"github.com/calderov/miniray/types"
)

// Generate one sampled primary ray for pixel (i, j). The pixel position is
// jittered by a uniform offset in [0, 1) along both pixel-delta axes and,
// when the lens is enabled, the ray origin is perturbed across the defocus
// disk. The returned ray direction is not normalized.
func (vp *viewport) primaryRay(i, j int, rng *rand.Rand) types.Ray {
	pixel := vp.pixel00.
		Add(vp.pixelDeltaU.Mul(float64(i) + 0.5 + rng.Float64())).
		Add(vp.pixelDeltaV.Mul(float64(j) + 0.5 + rng.Float64()))

	origin := vp.center
	if vp.lens {
		p := sampleUnitDisk(rng)
		origin = origin.
			Add(vp.defocusDiskU.Mul(p[0])).
			Add(vp.defocusDiskV.Mul(p[1]))
	}

	return types.NewRay(origin, pixel.Sub(origin))
}

// Draw a point uniformly from the unit disk by rejection sampling: draw
// two coordinates in [-1, 1) and redraw while the point falls outside the
// disk.
func sampleUnitDisk(rng *rand.Rand) types.Vec2 {
	for {
		p := types.XY(2.0*rng.Float64()-1.0, 2.0*rng.Float64()-1.0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
