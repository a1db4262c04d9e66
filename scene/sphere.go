package scene

import (
	"math"

	"github.com/calderov/miniray/types"
)

// A sphere described by its center and radius.
type Sphere struct {
	Center types.Vec3
	Radius float64
	Mat    Material
}

// Create a new sphere.
func NewSphere(center types.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Find the nearest ray/sphere intersection inside (tMin, tMax).
func (s *Sphere) Intersect(ray types.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.LenSq()
	halfB := oc.Dot(ray.Dir)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearest root that lies inside the interval.
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		T:     root,
		Point: ray.At(root),
		Mat:   s.Mat,
	}
	outward := rec.Point.Sub(s.Center).Mul(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outward)

	return rec, true
}
