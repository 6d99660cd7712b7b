package scenario

import (
	"fmt"

	"github.com/inference-sim/hostdevs/devs"
	"github.com/inference-sim/hostdevs/devs/host"
)

// Network is a built scenario: one adapter per declared model, coupled into
// a digraph. It owns the host objects behind the adapters.
type Network struct {
	Digraph *devs.Digraph
	// Names lists model names in declaration order.
	Names  []string
	Models map[string]*devs.Atomic

	objects []*host.Value
}

// Object returns the host object behind the named model, or nil.
func (n *Network) Object(name string) *host.Value {
	if a, ok := n.Models[name]; ok {
		return a.Object()
	}
	return nil
}

// Close releases the host objects. The network must not be simulated after
// Close.
func (n *Network) Close() {
	for _, obj := range n.objects {
		obj.DecRef()
	}
	n.objects = nil
}

// Build validates sc and instantiates its models in rt.
func Build(rt *host.Runtime, sc *Scenario) (*Network, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	n := &Network{
		Digraph: devs.NewDigraph(),
		Names:   make([]string, 0, len(sc.Models)),
		Models:  make(map[string]*devs.Atomic, len(sc.Models)),
	}
	bridge := devs.NewErrorBridge(rt)
	for _, m := range sc.Models {
		obj := newObject(rt, m)
		if obj == nil {
			msg, _ := bridge.FetchAndFormat()
			n.Close()
			return nil, fmt.Errorf("creating model %q: %s", m.Name, msg)
		}
		n.objects = append(n.objects, obj)
		name := rt.Str(m.Name)
		obj.SetAttr("name", name)
		name.DecRef()

		a, err := devs.NewAtomicFromObject(obj)
		if err != nil {
			n.Close()
			return nil, fmt.Errorf("binding model %q: %w", m.Name, err)
		}
		n.Names = append(n.Names, m.Name)
		n.Models[m.Name] = a
		n.Digraph.Add(a)
	}
	for _, c := range sc.Couplings {
		n.Digraph.Couple(n.Models[c.From], devs.Port(c.FromPort), n.Models[c.To], devs.Port(c.ToPort))
	}
	return n, nil
}

func newObject(rt *host.Runtime, m ModelConfig) *host.Value {
	param := func(key string, def float64) *host.Value {
		if v, ok := m.Params[key]; ok {
			return rt.Float(v)
		}
		return rt.Float(def)
	}
	switch m.Class {
	case ClassGenerator:
		period, count := param("period", 1), param("count", 0)
		defer period.DecRef()
		defer count.DecRef()
		return rt.NewObject(GeneratorClass, period, count)
	case ClassServer:
		st := param("service_time", 1)
		defer st.DecRef()
		return rt.NewObject(ServerClass, st)
	default:
		return rt.NewObject(CollectorClass)
	}
}
