package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulationTrace_RecordTransition_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for transitions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTransitions})

	// WHEN a transition and an output are recorded
	st.RecordTransition(TransitionRecord{Clock: 1, Model: "gen"})
	st.RecordOutput(OutputRecord{Clock: 1, Model: "gen", Port: 0, Value: "1"})

	// THEN only the transition is kept
	assert.Len(t, st.Transitions, 1)
	assert.Equal(t, "gen", st.Transitions[0].Model)
	assert.Empty(t, st.Outputs)
}

func TestSimulationTrace_EventsLevel_RecordsOutputs(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.RecordOutput(OutputRecord{Clock: 2, Model: "proc", Port: 1, Value: "'job'"})
	assert.Len(t, st.Outputs, 1)
}

func TestSimulationTrace_NoneLevel_RecordsNothing(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone})
	st.RecordTransition(TransitionRecord{Clock: 1, Model: "gen"})
	st.RecordOutput(OutputRecord{Clock: 1, Model: "gen"})
	assert.Empty(t, st.Transitions)
	assert.Empty(t, st.Outputs)
}

func TestIsValidTraceLevel(t *testing.T) {
	assert.True(t, IsValidTraceLevel(""))
	assert.True(t, IsValidTraceLevel("events"))
	assert.False(t, IsValidTraceLevel("decisions"))
}

func TestSummarize_CountsPerModel(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.RecordTransition(TransitionRecord{Clock: 1, Model: "gen"})
	st.RecordTransition(TransitionRecord{Clock: 1, Model: "sink"})
	st.RecordTransition(TransitionRecord{Clock: 3, Model: "gen"})
	st.RecordOutput(OutputRecord{Clock: 1, Model: "gen"})

	s := Summarize(st)
	assert.Equal(t, 3, s.TotalTransitions)
	assert.Equal(t, 1, s.TotalOutputs)
	assert.Equal(t, 2, s.TransitionsByModel["gen"])
	assert.Equal(t, 1.0, s.FirstEvent)
	assert.Equal(t, 3.0, s.LastEvent)
}

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalTransitions)
	assert.NotNil(t, s.OutputsByModel)
}
