package renderer

import "github.com/calderov/miniray/tracer"

type Renderer interface {
	// Render a frame, blocking until every worker has completed.
	Render() (*tracer.Frame, error)

	// Get render statistics for the last frame.
	Stats() FrameStats
}
