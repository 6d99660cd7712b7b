package kernel

import "errors"

type extCall struct {
	e  Time
	xb []PortValue[int]
}

// probe is an Atomic[int] with a constant time advance that records every call.
type probe struct {
	ta     Time
	out    []PortValue[int]
	fail   map[string]error
	calls  []string
	ext    []extCall
	conf   [][]PortValue[int]
	gcSeen [][]PortValue[int]
}

func newProbe(ta Time, out ...PortValue[int]) *probe {
	return &probe{ta: ta, out: out, fail: map[string]error{}}
}

func (p *probe) TypeIsAtomic() Atomic[int]   { return p }
func (p *probe) TypeIsNetwork() Network[int] { return nil }

func (p *probe) DeltaInt() error {
	p.calls = append(p.calls, "int")
	return p.fail["int"]
}

func (p *probe) DeltaExt(e Time, xb *Bag[int]) error {
	p.calls = append(p.calls, "ext")
	p.ext = append(p.ext, extCall{e: e, xb: xb.Values()})
	return p.fail["ext"]
}

func (p *probe) DeltaConf(xb *Bag[int]) error {
	p.calls = append(p.calls, "conf")
	p.conf = append(p.conf, xb.Values())
	return p.fail["conf"]
}

func (p *probe) OutputFunc(yb *Bag[int]) error {
	p.calls = append(p.calls, "output")
	for _, pv := range p.out {
		yb.Insert(pv)
	}
	return p.fail["output"]
}

func (p *probe) Ta() (Time, error) {
	return p.ta, p.fail["ta"]
}

func (p *probe) GCOutput(g *Bag[int]) {
	p.gcSeen = append(p.gcSeen, g.Values())
}

func (p *probe) count(op string) int {
	n := 0
	for _, c := range p.calls {
		if c == op {
			n++
		}
	}
	return n
}

var errBoom = errors.New("boom")

type recordingListener struct {
	outputs []PortValue[int]
	changes []Time
}

func (l *recordingListener) OutputEvent(_ Atomic[int], pv PortValue[int], _ Time) {
	l.outputs = append(l.outputs, pv)
}

func (l *recordingListener) StateChange(_ Atomic[int], t Time) {
	l.changes = append(l.changes, t)
}
