package scene

import (
	"github.com/calderov/miniray/types"
)

// Captures the nearest surface intersection found by an intersection test.
type HitRecord struct {
	// The hit point and the surface normal at that point. The normal
	// always opposes the incoming ray direction.
	Point  types.Vec3
	Normal types.Vec3

	// Parametric distance along the ray where the hit occurred.
	T float64

	// True when the incoming ray hit the surface from outside.
	FrontFace bool

	// The material attached to the hit surface.
	Mat Material
}

// Orients the record's normal against the incoming ray. The outward normal
// is expected to have unit length.
func (rec *HitRecord) SetFaceNormal(ray types.Ray, outward types.Vec3) {
	rec.FrontFace = ray.Dir.Dot(outward) < 0
	if rec.FrontFace {
		rec.Normal = outward
	} else {
		rec.Normal = outward.Neg()
	}
}

// The Intersectable interface is implemented by all objects that support
// ray intersection tests over a parametric distance interval.
type Intersectable interface {
	// Find the nearest intersection with parametric distance inside
	// (tMin, tMax). Returns false when the ray misses.
	Intersect(ray types.Ray, tMin, tMax float64) (HitRecord, bool)
}

// A flat collection of intersectable objects.
type World struct {
	objects []Intersectable
}

// Create a new world from a list of objects.
func NewWorld(objects ...Intersectable) *World {
	return &World{objects: objects}
}

// Append an object to the world.
func (w *World) Add(obj Intersectable) {
	w.objects = append(w.objects, obj)
}

// Find the nearest intersection among all objects in the world.
func (w *World) Intersect(ray types.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range w.objects {
		if rec, hit := obj.Intersect(ray, tMin, closestSoFar); hit {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}
