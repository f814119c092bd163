package sim

import (
	"fmt"
	"strings"
)

// ProgressSample is a single point-in-time snapshot of exploration state,
// the drone-domain analogue of the teacher's SimReport.
type ProgressSample struct {
	Tick           int
	Progress       float64
	KnownReachable int
	TotalReachable int
	FrontierCount  int
	ActiveAgents   int
	Warnings       int
}

// Reporter collects ProgressSamples over a run and formats summaries,
// generalizing the teacher's Reporter (reporter.go) from combat statistics
// to exploration statistics.
type Reporter struct {
	samples []ProgressSample
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter { return &Reporter{} }

// Collect takes one sample from the current simulation state.
func (r *Reporter) Collect(s *Simulation) {
	active := 0
	for _, a := range s.Agents() {
		if a.Active() {
			active++
		}
	}
	frontierCount := 0
	if f := s.Frontier(); f != nil {
		frontierCount = f.Len()
	}
	total := s.monitor.mask.Count()
	r.samples = append(r.samples, ProgressSample{
		Tick:           s.CurrentTick(),
		Progress:       s.Progress(),
		KnownReachable: s.SharedMap().KnownReachableCount(s.monitor.mask),
		TotalReachable: total,
		FrontierCount:  frontierCount,
		ActiveAgents:   active,
		Warnings:       len(s.Log().Filter("warn", "")),
	})
}

// Samples returns every collected sample, in collection order.
func (r *Reporter) Samples() []ProgressSample { return r.samples }

// Latest returns the most recent sample, or the zero value if none were
// collected yet.
func (r *Reporter) Latest() ProgressSample {
	if len(r.samples) == 0 {
		return ProgressSample{}
	}
	return r.samples[len(r.samples)-1]
}

// FormatLatest renders the most recent sample as a one-line summary.
func (r *Reporter) FormatLatest() string {
	s := r.Latest()
	return fmt.Sprintf("[T=%d] progress=%.1f%% known=%d/%d frontier=%d active=%d warnings=%d",
		s.Tick, s.Progress*100, s.KnownReachable, s.TotalReachable, s.FrontierCount, s.ActiveAgents, s.Warnings)
}

// FormatRun renders a multi-line report across the whole collected run.
func (r *Reporter) FormatRun() string {
	var b strings.Builder
	for _, s := range r.samples {
		fmt.Fprintf(&b, "[T=%d] progress=%.1f%% known=%d/%d frontier=%d active=%d warnings=%d\n",
			s.Tick, s.Progress*100, s.KnownReachable, s.TotalReachable, s.FrontierCount, s.ActiveAgents, s.Warnings)
	}
	return b.String()
}
