package types

// A ray described by an origin point and an unnormalized direction vector.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Define a ray.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Get the point at parametric distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
