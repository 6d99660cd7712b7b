package devs

import (
	"github.com/inference-sim/hostdevs/devs/host"
)

// Host method names dispatched to by ObjectCallbacks.
const (
	MethodDeltaInt  = "delta_int"
	MethodDeltaExt  = "delta_ext"
	MethodDeltaConf = "delta_conf"
	MethodOutput    = "output_func"
	MethodTa        = "ta"
)

// ObjectCallbacks returns callbacks that call the object's own methods:
//
//	delta_int()
//	delta_ext(e, xb)     xb is a list of (port, value) tuples
//	delta_conf(xb)
//	output_func()        returns None, a (port, value) tuple or a list of them
//	ta()                 returns an int or float; float('inf') for passive
func ObjectCallbacks() Callbacks {
	return Callbacks{
		DeltaInt:  callDeltaInt,
		DeltaExt:  callDeltaExt,
		DeltaConf: callDeltaConf,
		Output:    callOutput,
		Ta:        callTa,
	}
}

// NewAtomicFromObject binds obj to ObjectCallbacks.
func NewAtomicFromObject(obj *host.Value) (*Atomic, error) {
	return NewAtomic(obj, ObjectCallbacks())
}

func callDeltaInt(obj *host.Value) {
	host.XDecRef(obj.CallMethod(MethodDeltaInt))
}

func callDeltaExt(obj *host.Value, e Time, xb *Bag) {
	rt := obj.Runtime()
	ev := rt.Float(float64(e))
	defer ev.DecRef()
	xs := bagToList(rt, xb)
	defer xs.DecRef()
	host.XDecRef(obj.CallMethod(MethodDeltaExt, ev, xs))
}

func callDeltaConf(obj *host.Value, xb *Bag) {
	xs := bagToList(obj.Runtime(), xb)
	defer xs.DecRef()
	host.XDecRef(obj.CallMethod(MethodDeltaConf, xs))
}

func callOutput(obj *host.Value, yb *Bag) {
	res := obj.CallMethod(MethodOutput)
	if res == nil {
		return
	}
	defer res.DecRef()

	rt := obj.Runtime()
	switch res.Kind() {
	case host.KindNone:
	case host.KindTuple:
		insertPortValue(rt, res, yb)
	case host.KindList:
		items, _ := res.Items()
		for _, item := range items {
			if item.Kind() != host.KindTuple {
				rt.Raise("TypeError", "output_func list items must be (port, value) tuples, not %s", item.TypeName())
				return
			}
			if !insertPortValue(rt, item, yb) {
				return
			}
		}
	default:
		rt.Raise("TypeError", "output_func must return None, a (port, value) tuple or a list of them, not %s", res.TypeName())
	}
}

func callTa(obj *host.Value) Time {
	res := obj.CallMethod(MethodTa)
	if res == nil {
		return 0
	}
	defer res.DecRef()
	f, ok := res.AsFloat()
	if !ok || res.Kind() == host.KindBool {
		obj.Runtime().Raise("TypeError", "ta() must return a number, not %s", res.TypeName())
		return 0
	}
	return Time(f)
}

// bagToList builds a host list of (port, value) tuples from xb. The list
// takes its own references, so xb keeps ownership of its values.
func bagToList(rt *host.Runtime, xb *Bag) *host.Value {
	xs := rt.List()
	for pv := range xb.All() {
		port := rt.Int(int64(pv.Port))
		val := pv.Value
		if val == nil {
			val = rt.None()
		} else {
			val.IncRef()
		}
		tup := rt.Tuple(port, val)
		xs.Append(tup)
		tup.DecRef()
		port.DecRef()
		val.DecRef()
	}
	return xs
}

// insertPortValue adds the pair held by tup to yb with a new reference owned
// by the bag.
func insertPortValue(rt *host.Runtime, tup *host.Value, yb *Bag) bool {
	items, _ := tup.Items()
	if len(items) != 2 {
		rt.Raise("ValueError", "output_func must yield (port, value) tuples of length 2, got length %d", len(items))
		return false
	}
	port, ok := items[0].AsInt()
	if !ok || items[0].Kind() == host.KindBool {
		rt.Raise("TypeError", "port must be an int, not %s", items[0].TypeName())
		return false
	}
	yb.Insert(PortValue{Port: Port(port), Value: items[1].IncRef()})
	return true
}
