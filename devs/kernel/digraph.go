package kernel

type coupling[V any] struct {
	model Atomic[V]
	port  Port
}

// Digraph is a Network of atomic components joined by port couplings.
// Components keep registration order; adding a model twice is a no-op.
type Digraph[V any] struct {
	models []Atomic[V]
	member map[Atomic[V]]bool
	graph  map[coupling[V]][]Endpoint[V]
}

// NewDigraph creates an empty digraph.
func NewDigraph[V any]() *Digraph[V] {
	return &Digraph[V]{
		models: make([]Atomic[V], 0),
		member: make(map[Atomic[V]]bool),
		graph:  make(map[coupling[V]][]Endpoint[V]),
	}
}

// Add registers a component.
func (g *Digraph[V]) Add(model Atomic[V]) {
	if model == nil || g.member[model] {
		return
	}
	g.member[model] = true
	g.models = append(g.models, model)
}

// Couple connects src's output port to dst's input port, adding both models
// if needed. Several couplings may leave the same output port.
func (g *Digraph[V]) Couple(src Atomic[V], srcPort Port, dst Atomic[V], dstPort Port) {
	g.Add(src)
	g.Add(dst)
	key := coupling[V]{model: src, port: srcPort}
	g.graph[key] = append(g.graph[key], Endpoint[V]{Model: dst, Port: dstPort})
}

// Components returns a snapshot of the components in registration order.
func (g *Digraph[V]) Components() []Atomic[V] {
	out := make([]Atomic[V], len(g.models))
	copy(out, g.models)
	return out
}

// Route returns the receivers coupled to src's output port.
func (g *Digraph[V]) Route(src Atomic[V], port Port) []Endpoint[V] {
	return g.graph[coupling[V]{model: src, port: port}]
}

// TypeIsAtomic returns nil; a digraph is a network.
func (g *Digraph[V]) TypeIsAtomic() Atomic[V] { return nil }

// TypeIsNetwork returns g.
func (g *Digraph[V]) TypeIsNetwork() Network[V] { return g }
