package devs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/hostdevs/devs/host"
	"github.com/inference-sim/hostdevs/devs/internal/testutil"
	"github.com/inference-sim/hostdevs/devs/trace"
)

func TestTraceListener_RecordsOutputsAndTransitions(t *testing.T) {
	// GIVEN a named source feeding an observer, traced at events level
	rt := host.NewRuntime()
	source, srcObj := newObjectAtomic(t, rt)
	observer, _ := newObjectAtomic(t, rt)
	name := rt.Str("gen")
	srcObj.SetAttr("name", name)
	name.DecRef()
	testutil.Patch(t, srcObj, MethodTa, testutil.Float(1))
	testutil.Patch(t, srcObj, MethodOutput, testutil.Pair(0, 7))

	g := NewDigraph()
	g.Couple(source, 0, observer, 0)
	s, err := NewSimulatorFromDigraph(g)
	require.NoError(t, err)
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents})
	s.AddListener(NewTraceListener(st))

	// WHEN one event executes
	require.NoError(t, s.ExecuteNextEvent())

	// THEN the output and both transitions were recorded
	assert.Equal(t, []trace.OutputRecord{{Clock: 1, Model: "gen", Port: 0, Value: "7"}}, st.Outputs)
	require.Len(t, st.Transitions, 2)
	assert.Equal(t, "gen", st.Transitions[0].Model)
	assert.Equal(t, "TestAtomic", st.Transitions[1].Model)
}
