package trace

import "math"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalOutputs       int
	TotalTransitions   int
	FirstEvent         float64
	LastEvent          float64
	OutputsByModel     map[string]int // model name → count of values emitted
	TransitionsByModel map[string]int // model name → count of transitions
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		OutputsByModel:     make(map[string]int),
		TransitionsByModel: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalOutputs = len(st.Outputs)
	for _, o := range st.Outputs {
		summary.OutputsByModel[o.Model]++
	}

	summary.TotalTransitions = len(st.Transitions)
	if len(st.Transitions) > 0 {
		summary.FirstEvent = math.Inf(1)
		for _, r := range st.Transitions {
			summary.TransitionsByModel[r.Model]++
			summary.FirstEvent = math.Min(summary.FirstEvent, r.Clock)
			summary.LastEvent = math.Max(summary.LastEvent, r.Clock)
		}
	}

	return summary
}
