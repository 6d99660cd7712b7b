package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTransitions captures every state transition.
	TraceLevelTransitions TraceLevel = "transitions"
	// TraceLevelEvents captures transitions and every output value.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelTransitions: true,
	TraceLevelEvents:      true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects event records during a simulation.
type SimulationTrace struct {
	Config      TraceConfig
	Outputs     []OutputRecord
	Transitions []TransitionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Outputs:     make([]OutputRecord, 0),
		Transitions: make([]TransitionRecord, 0),
	}
}

// RecordOutput appends an output record if the level includes outputs.
func (st *SimulationTrace) RecordOutput(record OutputRecord) {
	if st.Config.Level != TraceLevelEvents {
		return
	}
	st.Outputs = append(st.Outputs, record)
}

// RecordTransition appends a transition record unless tracing is disabled.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	if st.Config.Level == TraceLevelNone || st.Config.Level == "" {
		return
	}
	st.Transitions = append(st.Transitions, record)
}
