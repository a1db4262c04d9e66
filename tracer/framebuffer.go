package tracer

import (
	"math"

	"github.com/calderov/miniray/types"
)

// Frame is a tone-mapped render result with 3 RGB bytes per pixel and rows
// stored top to bottom.
type Frame struct {
	W   int
	H   int
	Pix []uint8
}

// Accumulates per-pixel radiance sums in row-major order. Spans hand each
// worker a disjoint set of rows, so no two workers ever share a slot.
type frameBuffer struct {
	w, h int
	sums []types.Vec3
}

func newFrameBuffer(w, h int) *frameBuffer {
	return &frameBuffer{w: w, h: h, sums: make([]types.Vec3, w*h)}
}

// Get the accumulator slice for image row j.
func (fb *frameBuffer) row(j int) []types.Vec3 {
	return fb.sums[j*fb.w : (j+1)*fb.w]
}

// Average the accumulated sums by sample count, gamma correct and quantize
// into an 8-bit frame.
func (fb *frameBuffer) tonemap(samplesPerPixel int) *Frame {
	frame := &Frame{W: fb.w, H: fb.h, Pix: make([]uint8, fb.w*fb.h*3)}
	scale := 1.0 / float64(samplesPerPixel)

	for idx, sum := range fb.sums {
		frame.Pix[idx*3+0] = quantize(sum[0] * scale)
		frame.Pix[idx*3+1] = quantize(sum[1] * scale)
		frame.Pix[idx*3+2] = quantize(sum[2] * scale)
	}

	return frame
}

// Map a linear channel intensity to an output byte: gamma 2 correction,
// then clamp before scaling so out-of-range values cannot wrap around.
func quantize(v float64) uint8 {
	if v > 0 {
		v = math.Sqrt(v)
	}

	if v < 0 {
		v = 0
	} else if v > 0.999 {
		v = 0.999
	}

	return uint8(256.0 * v)
}
