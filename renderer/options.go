package renderer

import (
	"runtime"

	"github.com/calderov/miniray/tracer"
	"github.com/calderov/miniray/types"
)

// DefaultConfig returns a camera configuration with sensible defaults:
// a square frame looking down -z from the origin, no depth of field and
// one worker per cpu.
func DefaultConfig() tracer.CameraConfig {
	return tracer.CameraConfig{
		FrameW:          512,
		FrameH:          512,
		SamplesPerPixel: 16,
		MaxDepth:        10,
		Fov:             90,
		Eye:             types.XYZ(0, 0, 0),
		LookAt:          types.XYZ(0, 0, -1),
		Up:              types.XYZ(0, 1, 0),
		Aperture:        0,
		FocusDist:       1,
		MaxThreads:      runtime.NumCPU(),
		Seed:            42,
	}
}

// Reject configurations that would produce degenerate viewport geometry
// or undefined sampling behavior. Runs before any worker is spawned.
func validateConfig(cfg tracer.CameraConfig) error {
	switch {
	case cfg.FrameW <= 0 || cfg.FrameH <= 0:
		return ErrInvalidDimensions
	case cfg.SamplesPerPixel <= 0:
		return ErrInvalidSampleCount
	case cfg.MaxDepth <= 0:
		return ErrInvalidDepth
	case cfg.Fov <= 0 || cfg.Fov >= 180:
		return ErrInvalidFov
	case cfg.FocusDist <= 0:
		return ErrInvalidFocusDist
	case cfg.Eye.Sub(cfg.LookAt).NearZero():
		return ErrDegenerateCamera
	}

	return nil
}
