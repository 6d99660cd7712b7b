package devs

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/hostdevs/devs/host"
	"github.com/inference-sim/hostdevs/devs/kernel"
)

// Kernel types instantiated for host values.
type (
	Time      = kernel.Time
	Port      = kernel.Port
	PortValue = kernel.PortValue[*host.Value]
	Bag       = kernel.Bag[*host.Value]
	Listener  = kernel.Listener[*host.Value]
	Model     = kernel.Devs[*host.Value]
)

// Infinity is the passive time advance.
var Infinity = kernel.Infinity

// Callback signatures. A callback reports failure by raising on the object's
// runtime; the adapter checks the error indicator as soon as it returns.
type (
	DeltaIntFunc  func(obj *host.Value)
	DeltaExtFunc  func(obj *host.Value, e Time, xb *Bag)
	DeltaConfFunc func(obj *host.Value, xb *Bag)
	OutputFunc    func(obj *host.Value, yb *Bag)
	TaFunc        func(obj *host.Value) Time
)

// Callbacks are the five entry points an Atomic delegates to.
type Callbacks struct {
	DeltaInt  DeltaIntFunc
	DeltaExt  DeltaExtFunc
	DeltaConf DeltaConfFunc
	Output    OutputFunc
	Ta        TaFunc
}

func (cb Callbacks) missing() []Op {
	var ops []Op
	if cb.DeltaInt == nil {
		ops = append(ops, OpDeltaInt)
	}
	if cb.DeltaExt == nil {
		ops = append(ops, OpDeltaExt)
	}
	if cb.DeltaConf == nil {
		ops = append(ops, OpDeltaConf)
	}
	if cb.Output == nil {
		ops = append(ops, OpOutput)
	}
	if cb.Ta == nil {
		ops = append(ops, OpTa)
	}
	return ops
}

// Atomic is a kernel atomic model whose behaviour lives in a host object.
// The object and the callbacks are fixed when the adapter is created. The
// object is borrowed: the caller keeps it alive while the adapter is in use.
type Atomic struct {
	object *host.Value
	cb     Callbacks
}

var _ kernel.Atomic[*host.Value] = (*Atomic)(nil)

// NewAtomic binds obj to a complete set of callbacks. It fails with
// KindUnboundCallback if obj or any callback is nil.
func NewAtomic(obj *host.Value, cb Callbacks) (*Atomic, error) {
	if obj == nil {
		return nil, &Error{Kind: KindUnboundCallback, Op: OpBind, Detail: "host object is nil"}
	}
	if missing := cb.missing(); len(missing) > 0 {
		return nil, &Error{Kind: KindUnboundCallback, Op: OpBind, Model: obj.TypeName(), Detail: "missing callbacks " + joinOps(missing)}
	}
	return &Atomic{object: obj, cb: cb}, nil
}

// BindAtomic binds obj to cb as given. Any missing piece makes the
// corresponding operation fail with KindUnboundCallback.
func BindAtomic(obj *host.Value, cb Callbacks) *Atomic {
	return &Atomic{object: obj, cb: cb}
}

// Object returns the bound host object, or nil.
func (a *Atomic) Object() *host.Value {
	if a == nil {
		return nil
	}
	return a.object
}

// Name labels the adapter in diagnostics: the object's string "name"
// attribute if it has one, its type name otherwise.
func (a *Atomic) Name() string {
	if a == nil || a.object == nil {
		return "<unbound>"
	}
	if a.object.HasAttr("name") {
		if v := a.object.GetAttr("name"); v != nil {
			defer v.DecRef()
			if s, ok := v.AsStr(); ok {
				return s
			}
		}
	}
	return a.object.TypeName()
}

// TypeIsAtomic implements kernel.Devs.
func (a *Atomic) TypeIsAtomic() kernel.Atomic[*host.Value] { return a }

// TypeIsNetwork implements kernel.Devs.
func (a *Atomic) TypeIsNetwork() kernel.Network[*host.Value] { return nil }

// DeltaInt delegates the internal transition.
func (a *Atomic) DeltaInt() error {
	if a.Object() == nil || a.cb.DeltaInt == nil {
		return a.unbound(OpDeltaInt)
	}
	a.cb.DeltaInt(a.object)
	return a.check(OpDeltaInt)
}

// DeltaExt delegates the external transition.
func (a *Atomic) DeltaExt(e Time, xb *Bag) error {
	if a.Object() == nil || a.cb.DeltaExt == nil {
		return a.unbound(OpDeltaExt)
	}
	a.cb.DeltaExt(a.object, e, xb)
	return a.check(OpDeltaExt)
}

// DeltaConf delegates the confluent transition.
func (a *Atomic) DeltaConf(xb *Bag) error {
	if a.Object() == nil || a.cb.DeltaConf == nil {
		return a.unbound(OpDeltaConf)
	}
	a.cb.DeltaConf(a.object, xb)
	return a.check(OpDeltaConf)
}

// OutputFunc delegates the output function. Values the callback puts into
// yb must carry a reference owned by the bag.
func (a *Atomic) OutputFunc(yb *Bag) error {
	if a.Object() == nil || a.cb.Output == nil {
		return a.unbound(OpOutput)
	}
	a.cb.Output(a.object, yb)
	return a.check(OpOutput)
}

// Ta delegates the time advance.
func (a *Atomic) Ta() (Time, error) {
	if a.Object() == nil || a.cb.Ta == nil {
		return 0, a.unbound(OpTa)
	}
	ta := a.cb.Ta(a.object)
	if err := a.check(OpTa); err != nil {
		return 0, err
	}
	return ta, nil
}

// GCOutput releases the bag's reference to every value it holds and empties
// the bag, so releasing the same bag twice is harmless.
func (a *Atomic) GCOutput(g *Bag) {
	if g == nil {
		return
	}
	for pv := range g.All() {
		host.XDecRef(pv.Value)
	}
	g.Clear()
}

func (a *Atomic) unbound(op Op) error {
	detail := "callback not bound"
	if a.Object() == nil {
		detail = "host object not bound"
	}
	return &Error{Kind: KindUnboundCallback, Op: op, Model: a.Name(), Detail: detail}
}

// check must run right after every callback so a pending error is never
// attributed to a later, unrelated call.
func (a *Atomic) check(op Op) error {
	msg, raised := NewErrorBridge(a.object.Runtime()).FetchAndFormat()
	if !raised {
		return nil
	}
	logrus.WithFields(logrus.Fields{"model": a.Name(), "op": op}).Debug("host callback raised")
	return &Error{Kind: KindHostRaised, Op: op, Model: a.Name(), Detail: msg}
}

func joinOps(ops []Op) string {
	s := ""
	for i, op := range ops {
		if i > 0 {
			s += ", "
		}
		s += string(op)
	}
	return s
}
