package tracer

import (
	"math"
	"math/rand"

	"github.com/calderov/miniray/scene"
	"github.com/calderov/miniray/types"
)

// Lower bound of the valid intersection interval. Keeps scattered rays
// from re-intersecting the surface they left (shadow acne).
const hitEpsilon = 0.001

var (
	white   = types.XYZ(1.0, 1.0, 1.0)
	skyBlue = types.XYZ(0.5, 0.7, 1.0)
)

// Estimate the radiance carried by a ray. The path is walked iteratively
// with a multiplicative throughput accumulator: each bounce multiplies the
// throughput by the surface attenuation, and the walk terminates on
// absorption, on a miss (scaled background), or when the bounce budget is
// exhausted (black).
func radiance(ray types.Ray, world scene.Intersectable, maxDepth int, rng *rand.Rand) types.Vec3 {
	throughput := white

	for depth := maxDepth; depth > 0; depth-- {
		rec, hit := world.Intersect(ray, hitEpsilon, math.Inf(1))
		if !hit {
			return throughput.MulVec3(background(ray))
		}

		attenuation, scattered, ok := rec.Mat.Scatter(ray, rec, rng)
		if !ok {
			return types.Vec3{}
		}

		throughput = throughput.MulVec3(attenuation)
		ray = scattered
	}

	return types.Vec3{}
}

// The background is a vertical blend between white and sky blue driven by
// the normalized ray direction's vertical component.
func background(ray types.Ray) types.Vec3 {
	t := 0.5 * (ray.Dir.Normalize()[1] + 1.0)
	return white.Lerp(skyBlue, t)
}
