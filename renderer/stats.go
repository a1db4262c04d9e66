package renderer

import "time"

type WorkerStat struct {
	// The worker id.
	ID int

	// The number of rows rendered and the percentage of total frame area
	// they represent.
	Rows         int
	FramePercent float64

	// Render time for the assigned rows.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for the entire frame.
	RenderTime time.Duration
}
