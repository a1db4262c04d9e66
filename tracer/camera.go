package tracer

import (
	"math"

	"github.com/calderov/miniray/types"
)

// CameraConfig holds the camera and render parameters for a frame. It is
// treated as immutable once rendering starts.
type CameraConfig struct {
	// Frame dims.
	FrameW int
	FrameH int

	// The number of emitted rays per traced pixel.
	SamplesPerPixel int

	// Maximum number of indirect bounces per path.
	MaxDepth int

	// Vertical field of view in degrees.
	Fov float64

	// Camera placement.
	Eye    types.Vec3
	LookAt types.Vec3
	Up     types.Vec3

	// Lens aperture angle in degrees. Values <= 0 disable depth of field
	// and rays originate exactly at the camera center.
	Aperture float64

	// Distance from the eye to the plane of perfect focus.
	FocusDist float64

	// Number of render workers. Values < 1 are coerced to 1.
	MaxThreads int

	// Base seed for the per-row random sequences.
	Seed int64
}

// The viewport geometry derived from a camera configuration. Computed once
// per render invocation and never mutated afterwards.
type viewport struct {
	// Camera center and orthonormal basis.
	center  types.Vec3
	u, v, w types.Vec3

	// World-space offsets between adjacent pixel centers.
	pixelDeltaU types.Vec3
	pixelDeltaV types.Vec3

	// World-space center of pixel (0, 0).
	pixel00 types.Vec3

	// Defocus disk basis; zero vectors when the lens is disabled.
	defocusDiskU types.Vec3
	defocusDiskV types.Vec3
	lens         bool
}

// Derive the viewport geometry for a validated camera configuration.
func newViewport(cfg CameraConfig) *viewport {
	center := cfg.Eye

	// Orthonormal camera basis; w points from the look-at target back to
	// the eye so the camera looks along -w.
	w := cfg.Eye.Sub(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	halfH := math.Tan(degToRad(cfg.Fov) / 2.0)
	viewportH := 2.0 * halfH * cfg.FocusDist
	viewportW := viewportH * float64(cfg.FrameW) / float64(cfg.FrameH)

	// Image rows grow downward while v grows upward, so the vertical
	// viewport extent is negated.
	viewportU := u.Mul(viewportW)
	viewportV := v.Neg().Mul(viewportH)

	pixelDeltaU := viewportU.Mul(1.0 / float64(cfg.FrameW))
	pixelDeltaV := viewportV.Mul(1.0 / float64(cfg.FrameH))

	// Offset the first pixel by half a delta so its ray passes through the
	// pixel center rather than its corner.
	upperLeft := center.
		Sub(w.Mul(cfg.FocusDist)).
		Sub(viewportU.Mul(0.5)).
		Sub(viewportV.Mul(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	vp := &viewport{
		center:      center,
		u:           u,
		v:           v,
		w:           w,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		pixel00:     pixel00,
	}

	if cfg.Aperture > 0 {
		radius := cfg.FocusDist * math.Tan(degToRad(cfg.Aperture)/2.0)
		vp.defocusDiskU = u.Mul(radius)
		vp.defocusDiskV = v.Mul(radius)
		vp.lens = true
	}

	return vp
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
