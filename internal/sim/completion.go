package sim

// CompletionMonitor compares observed-reachable cells against the total
// reachable set to decide termination (§4.8).
type CompletionMonitor struct {
	mask *ReachableMask
}

// NewCompletionMonitor wraps a precomputed ReachableMask.
func NewCompletionMonitor(mask *ReachableMask) *CompletionMonitor {
	return &CompletionMonitor{mask: mask}
}

// Progress returns known_reachable / total_reachable. A mask with zero
// reachable cells is defined as complete (progress 1.0): nothing to
// explore means immediate termination, matching §4.2's stated failure mode
// (none — an empty mask is valid).
func (c *CompletionMonitor) Progress(shared *SharedMap) float64 {
	total := c.mask.Count()
	if total == 0 {
		return 1.0
	}
	return float64(shared.KnownReachableCount(c.mask)) / float64(total)
}

// Done reports whether progress has reached 1.0.
func (c *CompletionMonitor) Done(shared *SharedMap) bool {
	return c.Progress(shared) >= 1.0
}
