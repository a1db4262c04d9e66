package tracer

// A contiguous band of image rows owned by exactly one worker.
type Span struct {
	// First row and row count.
	Y int
	H int
}

// The BlockScheduler interface is implemented by all row partitioning
// algorithms.
type BlockScheduler interface {
	// Split frameH image rows into non-overlapping spans that exactly
	// cover [0, frameH), one span per worker.
	Schedule(frameH, workers int) []Span
}

// The uniform scheduler assigns every worker the same number of rows with
// the last worker absorbing the remainder.
type uniformScheduler struct{}

// Create a new uniform scheduler instance.
func UniformScheduler() BlockScheduler {
	return uniformScheduler{}
}

func (uniformScheduler) Schedule(frameH, workers int) []Span {
	if workers < 1 {
		workers = 1
	}

	spans := make([]Span, workers)
	rows := frameH / workers
	for idx := range spans {
		spans[idx] = Span{Y: idx * rows, H: rows}
	}
	spans[workers-1].H = frameH - (workers-1)*rows

	return spans
}
