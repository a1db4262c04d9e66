package renderer

import "errors"

var (
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrDegenerateCamera   = errors.New("renderer: camera eye and look-at positions coincide")
	ErrInvalidDimensions  = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth       = errors.New("renderer: max bounce depth must be positive")
	ErrInvalidFov         = errors.New("renderer: vertical fov must lie in (0, 180)")
	ErrInvalidFocusDist   = errors.New("renderer: focus distance must be positive")
)
