package renderer

import (
	"time"

	"github.com/calderov/miniray/log"
	"github.com/calderov/miniray/scene"
	"github.com/calderov/miniray/tracer"
)

// Interval between progress reports while workers are running.
const progressInterval = 500 * time.Millisecond

// The default renderer drives a cpu tracer and reports row progress
// through the logger while workers are running.
type defaultRenderer struct {
	logger log.Logger

	cfg   tracer.CameraConfig
	tr    *tracer.Tracer
	stats FrameStats
}

// Create a new cpu renderer using the specified row scheduler. The
// configuration is validated before any render state is allocated.
func NewDefault(world *scene.World, scheduler tracer.BlockScheduler, cfg tracer.CameraConfig) (Renderer, error) {
	if world == nil {
		return nil, ErrSceneNotDefined
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &defaultRenderer{
		logger: log.New("renderer"),
		cfg:    cfg,
		tr:     tracer.New(cfg, world, scheduler),
	}, nil
}

// Render a frame, blocking until the tracer's workers have all joined.
func (r *defaultRenderer) Render() (*tracer.Frame, error) {
	stopChan := make(chan struct{})
	go r.monitorProgress(stopChan)

	start := time.Now()
	frame := r.tr.Render()
	close(stopChan)

	r.collectStats(time.Since(start))
	return frame, nil
}

// Get render statistics for the last frame.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Periodically log the percentage of completed rows. The monitor performs
// no writes to shared render state and exits once the frame is complete.
func (r *defaultRenderer) monitorProgress(stopChan <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			done, total := r.tr.Progress()
			r.logger.Infof("rendering: %d%%", done*100/total)
			if done == total {
				return
			}
		}
	}
}

func (r *defaultRenderer) collectStats(total time.Duration) {
	workerStats := r.tr.WorkerStats()

	r.stats = FrameStats{
		RenderTime: total,
		Workers:    make([]WorkerStat, len(workerStats)),
	}
	for idx, s := range workerStats {
		r.stats.Workers[idx] = WorkerStat{
			ID:           idx,
			Rows:         s.Rows,
			FramePercent: float64(s.Rows) * 100.0 / float64(r.cfg.FrameH),
			RenderTime:   s.RenderTime,
		}
	}
}
