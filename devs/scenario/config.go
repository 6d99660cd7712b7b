// Package scenario loads simulation scenarios from YAML and builds them into
// a devs.Digraph of host models.
package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/hostdevs/devs/trace"
)

// Scenario describes the models of a simulation and how they are coupled.
type Scenario struct {
	// Horizon bounds the run. Zero means run until every model is passive.
	Horizon   float64          `yaml:"horizon"`
	Trace     string           `yaml:"trace"`
	Models    []ModelConfig    `yaml:"models"`
	Couplings []CouplingConfig `yaml:"couplings"`
}

// ModelConfig declares one model instance.
type ModelConfig struct {
	Name   string             `yaml:"name"`
	Class  string             `yaml:"class"`
	Params map[string]float64 `yaml:"params"`
}

// CouplingConfig routes one output port to one input port.
type CouplingConfig struct {
	From     string `yaml:"from"`
	FromPort int    `yaml:"from_port"`
	To       string `yaml:"to"`
	ToPort   int    `yaml:"to_port"`
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// ValidClasses is the set of builtin model class names.
var ValidClasses = map[string]bool{ClassGenerator: true, ClassServer: true, ClassCollector: true}

// ValidParams lists the parameters each builtin class accepts.
var ValidParams = map[string]map[string]bool{
	ClassGenerator: {"period": true, "count": true},
	ClassServer:    {"service_time": true},
	ClassCollector: {},
}

// ClassNames returns the builtin class names in sorted order.
func ClassNames() []string {
	names := make([]string, 0, len(ValidClasses))
	for n := range ValidClasses {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks names, classes, parameter ranges and coupling endpoints.
func (sc *Scenario) Validate() error {
	if sc.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %f", sc.Horizon)
	}
	if !trace.IsValidTraceLevel(sc.Trace) {
		return fmt.Errorf("unknown trace level %q", sc.Trace)
	}
	if len(sc.Models) == 0 {
		return fmt.Errorf("scenario declares no models")
	}
	seen := make(map[string]bool, len(sc.Models))
	for i, m := range sc.Models {
		if m.Name == "" {
			return fmt.Errorf("model %d has no name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate model name %q", m.Name)
		}
		seen[m.Name] = true
		if !ValidClasses[m.Class] {
			return fmt.Errorf("model %q: unknown class %q (valid: %v)", m.Name, m.Class, ClassNames())
		}
		for key, v := range m.Params {
			if !ValidParams[m.Class][key] {
				return fmt.Errorf("model %q: unknown parameter %q for class %s", m.Name, key, m.Class)
			}
			if v < 0 {
				return fmt.Errorf("model %q: %s must be non-negative, got %f", m.Name, key, v)
			}
		}
		if p, ok := m.Params["period"]; ok && p == 0 {
			return fmt.Errorf("model %q: period must be positive", m.Name)
		}
		if m.Class == ClassGenerator && m.Params["count"] == 0 && sc.Horizon == 0 {
			return fmt.Errorf("model %q: generator without count never goes passive; set count or a positive horizon", m.Name)
		}
	}
	for i, c := range sc.Couplings {
		if !seen[c.From] {
			return fmt.Errorf("coupling %d: unknown source model %q", i, c.From)
		}
		if !seen[c.To] {
			return fmt.Errorf("coupling %d: unknown destination model %q", i, c.To)
		}
		if c.FromPort < 0 || c.ToPort < 0 {
			return fmt.Errorf("coupling %d: ports must be non-negative", i)
		}
	}
	return nil
}
