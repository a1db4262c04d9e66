package scene

import (
	"math"
	"math/rand"

	"github.com/calderov/miniray/types"
)

// The Material interface determines how a surface transforms incoming
// light. Scatter returns the attenuation color and the outgoing ray, or
// false when the surface absorbs the incoming ray.
type Material interface {
	Scatter(in types.Ray, rec HitRecord, rng *rand.Rand) (types.Vec3, types.Ray, bool)
}

// A diffuse surface scattering rays about the surface normal.
type Lambertian struct {
	Albedo types.Vec3
}

// Scatter an incoming ray in a random direction biased towards the normal.
func (m Lambertian) Scatter(_ types.Ray, rec HitRecord, rng *rand.Rand) (types.Vec3, types.Ray, bool) {
	dir := rec.Normal.Add(randomUnitVector(rng))

	// A random vector opposite the normal yields a degenerate direction.
	if dir.NearZero() {
		dir = rec.Normal
	}

	return m.Albedo, types.NewRay(rec.Point, dir), true
}

// A reflective surface with an optional fuzz factor in [0, 1].
type Metal struct {
	Albedo types.Vec3
	Fuzz   float64
}

// Scatter an incoming ray by mirror reflection perturbed by fuzz. Rays
// reflected into the surface are absorbed.
func (m Metal) Scatter(in types.Ray, rec HitRecord, rng *rand.Rand) (types.Vec3, types.Ray, bool) {
	reflected := in.Dir.Normalize().Reflect(rec.Normal)
	dir := reflected.Add(randomUnitVector(rng).Mul(m.Fuzz))
	if dir.Dot(rec.Normal) <= 0 {
		return types.Vec3{}, types.Ray{}, false
	}

	return m.Albedo, types.NewRay(rec.Point, dir), true
}

// A transparent surface such as glass or water.
type Dielectric struct {
	// Index of refraction relative to the surrounding medium.
	RefIdx float64
}

// Scatter an incoming ray by refraction, falling back to total internal
// reflection when Snell's law has no solution.
func (m Dielectric) Scatter(in types.Ray, rec HitRecord, rng *rand.Rand) (types.Vec3, types.Ray, bool) {
	ratio := m.RefIdx
	if rec.FrontFace {
		ratio = 1.0 / m.RefIdx
	}

	unitDir := in.Dir.Normalize()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if ratio*sinTheta > 1.0 || schlick(cosTheta, ratio) > rng.Float64() {
		dir = unitDir.Reflect(rec.Normal)
	} else {
		dir = unitDir.Refract(rec.Normal, ratio)
	}

	return types.XYZ(1, 1, 1), types.NewRay(rec.Point, dir), true
}

// A surface that absorbs all incoming light.
type Absorber struct{}

func (Absorber) Scatter(types.Ray, HitRecord, *rand.Rand) (types.Vec3, types.Ray, bool) {
	return types.Vec3{}, types.Ray{}, false
}

// Schlick's approximation for reflectance.
func schlick(cosTheta, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// Draw a uniformly distributed unit vector via rejection sampling.
func randomUnitVector(rng *rand.Rand) types.Vec3 {
	for {
		p := types.XYZ(
			2.0*rng.Float64()-1.0,
			2.0*rng.Float64()-1.0,
			2.0*rng.Float64()-1.0,
		)
		if sq := p.LenSq(); sq > 1e-12 && sq < 1.0 {
			return p.Mul(1.0 / math.Sqrt(sq))
		}
	}
}
