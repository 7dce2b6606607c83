package orbital

import (
	"fmt"
	"os"
	"time"
)

// passStats holds per-pass timing and output metrics.
// Only populated when Scene.debug is true.
type passStats struct {
	event   PassEvent
	maxStep time.Duration
}

// debugLog prints pass stats to stderr.
func (s *Scene) debugLog(stats passStats) {
	if !s.debug {
		return
	}
	e := stats.event
	var avg time.Duration
	if e.Steps > 0 {
		avg = e.ScanTime / time.Duration(e.Steps)
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[orbital] pass %d | steps: %d | scan: %v | avg step: %v | max step: %v\n",
		e.Pass, e.Steps, e.ScanTime, avg, stats.maxStep)
	_, _ = fmt.Fprintf(os.Stderr,
		"[orbital] res: %d | size: %.0f | accepted: %d | quads: %d\n",
		e.Resolution, e.Size, e.Accepted, e.Instances)
}

// debugCheckStep warns on stderr when a single step ran well past its
// budget. One slice overshoot is expected; more points at a slow evaluator.
func debugCheckStep(elapsed, budget time.Duration) {
	if elapsed > budget+MaxBudget {
		_, _ = fmt.Fprintf(os.Stderr, "[orbital] warning: step took %v (budget %v)\n", elapsed, budget)
	}
}
