package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

const floatCmpEpsilon = 1e-9

type Vec2 f64.Vec2
type Vec3 f64.Vec3

// Define a 2 component vector.
func XY(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec3(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Negate a vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Get 3 component vector squared length.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize 3 component vector. Zero-length vectors normalize to zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Calculate dot product of 2 vectors.
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Linearly interpolate between two vectors.
func (v Vec3) Lerp(v2 Vec3, t float64) Vec3 {
	return v.Mul(1.0 - t).Add(v2.Mul(t))
}

// Reflect a vector about a unit normal.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2.0 * v.Dot(n)))
}

// Refract a unit vector through a surface with the given normal and
// refraction index ratio.
func (v Vec3) Refract(n Vec3, ratio float64) Vec3 {
	cosTheta := math.Min(v.Neg().Dot(n), 1.0)
	perp := v.Add(n.Mul(cosTheta)).Mul(ratio)
	parallel := n.Mul(-math.Sqrt(math.Abs(1.0 - perp.LenSq())))
	return perp.Add(parallel)
}

// Check whether all vector components are close to zero.
func (v Vec3) NearZero() bool {
	return math.Abs(v[0]) < floatCmpEpsilon && math.Abs(v[1]) < floatCmpEpsilon && math.Abs(v[2]) < floatCmpEpsilon
}

// Subtract a vector.
func (v Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{v[0] - v2[0], v[1] - v2[1]}
}

// Calculate dot product of 2 vectors.
func (v Vec2) Dot(v2 Vec2) float64 {
	return v[0]*v2[0] + v[1]*v2[1]
}
