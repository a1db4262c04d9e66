package tracer

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/calderov/miniray/log"
	"github.com/calderov/miniray/scene"
	"github.com/calderov/miniray/types"
)

// Statistics for a single worker.
type Stats struct {
	// The number of rows assigned to the worker.
	Rows int

	// The time spent rendering the assigned rows.
	RenderTime time.Duration
}

// A worker renders one row span into its disjoint region of the frame
// buffer.
type worker struct {
	id   int
	span Span

	// Rows completed so far. Written only by the owning worker, read by
	// the progress monitor.
	rowsDone atomic.Uint32

	// Populated by the worker before it signals completion.
	stats Stats
}

// Tracer renders a scene on a fixed pool of cpu workers, one per row span.
type Tracer struct {
	logger log.Logger

	cfg     CameraConfig
	world   scene.Intersectable
	vp      *viewport
	workers []*worker

	// Returns the random source for an image row. Sample sequences depend
	// only on the row, never on the worker layout, so renders are
	// reproducible across thread counts.
	rowSource func(row int) rand.Source
}

// Create a new cpu tracer for a validated camera configuration. The
// viewport geometry and the row partition are both derived once, here.
func New(cfg CameraConfig, world scene.Intersectable, scheduler BlockScheduler) *Tracer {
	t := &Tracer{
		logger: log.New("tracer"),
		cfg:    cfg,
		world:  world,
		vp:     newViewport(cfg),
		rowSource: func(row int) rand.Source {
			return rand.NewSource(cfg.Seed + int64(row))
		},
	}

	spans := scheduler.Schedule(cfg.FrameH, cfg.MaxThreads)
	t.workers = make([]*worker, len(spans))
	for idx, span := range spans {
		t.workers[idx] = &worker{id: idx, span: span}
	}
	t.logger.Debugf("partitioned %d rows across %d workers", cfg.FrameH, len(t.workers))

	return t
}

// Render the configured frame and return the tone-mapped result. Blocks
// until every worker has completed its span.
func (t *Tracer) Render() *Frame {
	fb := newFrameBuffer(t.cfg.FrameW, t.cfg.FrameH)

	doneChan := make(chan int, len(t.workers))
	for _, w := range t.workers {
		go t.trace(w, fb, doneChan)
	}

	// Join: the frame buffer is fully populated only after every worker
	// has signaled completion.
	for range t.workers {
		<-doneChan
	}

	return fb.tonemap(t.cfg.SamplesPerPixel)
}

// Report completed and total row counts. Safe to call concurrently with a
// running render; performs no writes to shared render state.
func (t *Tracer) Progress() (int, int) {
	done := 0
	for _, w := range t.workers {
		done += int(w.rowsDone.Load())
	}
	return done, t.cfg.FrameH
}

// Retrieve per-worker statistics for the last rendered frame.
func (t *Tracer) WorkerStats() []Stats {
	out := make([]Stats, len(t.workers))
	for idx, w := range t.workers {
		out[idx] = w.stats
	}
	return out
}

// The per-worker render loop: for every assigned row, for every column,
// accumulate SamplesPerPixel radiance estimates into the worker's slice of
// the frame buffer.
func (t *Tracer) trace(w *worker, fb *frameBuffer, doneChan chan<- int) {
	start := time.Now()

	for j := w.span.Y; j < w.span.Y+w.span.H; j++ {
		rng := rand.New(t.rowSource(j))
		row := fb.row(j)

		for i := 0; i < t.cfg.FrameW; i++ {
			var sum types.Vec3
			for s := 0; s < t.cfg.SamplesPerPixel; s++ {
				ray := t.vp.primaryRay(i, j, rng)
				sum = sum.Add(radiance(ray, t.world, t.cfg.MaxDepth, rng))
			}
			row[i] = sum
		}

		w.rowsDone.Add(1)
	}

	w.stats = Stats{Rows: w.span.H, RenderTime: time.Since(start)}
	t.logger.Debugf("worker %d rendered %d rows in %s", w.id, w.stats.Rows, w.stats.RenderTime)
	doneChan <- w.id
}
