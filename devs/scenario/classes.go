package scenario

import (
	"math"

	"github.com/inference-sim/hostdevs/devs/host"
)

// Builtin class names.
const (
	ClassGenerator = "generator"
	ClassServer    = "server"
	ClassCollector = "collector"
)

// GeneratorClass emits an increasing integer id on port 0 every period.
// A positive count stops it after that many outputs.
//
//	generator(period, count)
var GeneratorClass = &host.Class{
	Name: "Generator",
	Init: func(rt *host.Runtime, args []*host.Value) *host.Value {
		if !arity(rt, "Generator.__init__", args, 3) {
			return nil
		}
		self := args[0]
		period, ok := number(rt, args[1])
		if !ok {
			return nil
		}
		self.SetAttr("period", args[1])
		self.SetAttr("count", args[2])
		setInt(self, "emitted", 0)
		setFloat(self, "sigma", period)
		return rt.None()
	},
	Methods: map[string]host.Func{
		"output_func": func(rt *host.Runtime, args []*host.Value) *host.Value {
			id := args[0].GetAttr("emitted")
			if id == nil {
				return nil
			}
			defer id.DecRef()
			port := rt.Int(0)
			defer port.DecRef()
			return rt.Tuple(port, id)
		},
		"delta_int":  generatorNext,
		"delta_conf": generatorNext,
		"delta_ext": func(rt *host.Runtime, args []*host.Value) *host.Value {
			if !arity(rt, "Generator.delta_ext", args, 3) {
				return nil
			}
			return elapse(rt, args[0], args[1])
		},
		"ta": returnSigma,
	},
}

func generatorNext(rt *host.Runtime, args []*host.Value) *host.Value {
	self := args[0]
	emitted, ok := intAttr(self, "emitted")
	if !ok {
		return nil
	}
	count, ok := floatAttr(self, "count")
	if !ok {
		return nil
	}
	period, ok := floatAttr(self, "period")
	if !ok {
		return nil
	}
	emitted++
	setInt(self, "emitted", emitted)
	if count > 0 && float64(emitted) >= count {
		setFloat(self, "sigma", math.Inf(1))
	} else {
		setFloat(self, "sigma", period)
	}
	return rt.None()
}

// ServerClass is a single FIFO server. Values arriving on any port join the
// queue; the head is emitted on port 0 once it has been served for
// service_time.
//
//	server(service_time)
var ServerClass = &host.Class{
	Name: "Server",
	Init: func(rt *host.Runtime, args []*host.Value) *host.Value {
		if !arity(rt, "Server.__init__", args, 2) {
			return nil
		}
		self := args[0]
		if _, ok := number(rt, args[1]); !ok {
			return nil
		}
		self.SetAttr("service_time", args[1])
		q := rt.List()
		self.SetAttr("queue", q)
		q.DecRef()
		setFloat(self, "sigma", math.Inf(1))
		return rt.None()
	},
	Methods: map[string]host.Func{
		"output_func": func(rt *host.Runtime, args []*host.Value) *host.Value {
			q := args[0].GetAttr("queue")
			if q == nil {
				return nil
			}
			defer q.DecRef()
			items, _ := q.Items()
			if len(items) == 0 {
				return rt.None()
			}
			port := rt.Int(0)
			defer port.DecRef()
			return rt.Tuple(port, items[0])
		},
		"delta_int": func(rt *host.Runtime, args []*host.Value) *host.Value {
			self := args[0]
			q := self.GetAttr("queue")
			if q == nil {
				return nil
			}
			defer q.DecRef()
			done := q.Pop(0)
			if done == nil {
				return nil
			}
			done.DecRef()
			return serverReschedule(rt, self, q)
		},
		"delta_ext": func(rt *host.Runtime, args []*host.Value) *host.Value {
			if !arity(rt, "Server.delta_ext", args, 3) {
				return nil
			}
			self := args[0]
			q := self.GetAttr("queue")
			if q == nil {
				return nil
			}
			defer q.DecRef()
			busy := q.Len() > 0
			if busy {
				host.XDecRef(elapse(rt, self, args[1]))
				if rt.Occurred() {
					return nil
				}
			}
			if !appendValues(rt, q, args[2]) {
				return nil
			}
			if busy {
				return rt.None()
			}
			return serverReschedule(rt, self, q)
		},
		"delta_conf": func(rt *host.Runtime, args []*host.Value) *host.Value {
			if !arity(rt, "Server.delta_conf", args, 2) {
				return nil
			}
			self := args[0]
			res := self.CallMethod("delta_int")
			if res == nil {
				return nil
			}
			res.DecRef()
			zero := rt.Float(0)
			defer zero.DecRef()
			return self.CallMethod("delta_ext", zero, args[1])
		},
		"ta": returnSigma,
	},
}

func serverReschedule(rt *host.Runtime, self, q *host.Value) *host.Value {
	if q.Len() == 0 {
		setFloat(self, "sigma", math.Inf(1))
		return rt.None()
	}
	st, ok := floatAttr(self, "service_time")
	if !ok {
		return nil
	}
	setFloat(self, "sigma", st)
	return rt.None()
}

// CollectorClass stores every value it receives in its "received" list and
// never produces output.
//
//	collector()
var CollectorClass = &host.Class{
	Name: "Collector",
	Init: func(rt *host.Runtime, args []*host.Value) *host.Value {
		received := rt.List()
		args[0].SetAttr("received", received)
		received.DecRef()
		return rt.None()
	},
	Methods: map[string]host.Func{
		"output_func": func(rt *host.Runtime, _ []*host.Value) *host.Value { return rt.None() },
		"delta_int":   func(rt *host.Runtime, _ []*host.Value) *host.Value { return rt.None() },
		"delta_ext": func(rt *host.Runtime, args []*host.Value) *host.Value {
			if !arity(rt, "Collector.delta_ext", args, 3) {
				return nil
			}
			return collect(rt, args[0], args[2])
		},
		"delta_conf": func(rt *host.Runtime, args []*host.Value) *host.Value {
			if !arity(rt, "Collector.delta_conf", args, 2) {
				return nil
			}
			return collect(rt, args[0], args[1])
		},
		"ta": func(rt *host.Runtime, _ []*host.Value) *host.Value { return rt.Float(math.Inf(1)) },
	},
}

func collect(rt *host.Runtime, self, xb *host.Value) *host.Value {
	received := self.GetAttr("received")
	if received == nil {
		return nil
	}
	defer received.DecRef()
	if !appendValues(rt, received, xb) {
		return nil
	}
	return rt.None()
}

// appendValues appends the value of every (port, value) tuple in xb to dst.
func appendValues(rt *host.Runtime, dst, xb *host.Value) bool {
	pairs, ok := xb.Items()
	if !ok {
		rt.Raise("TypeError", "expected a list of (port, value) tuples, not %s", xb.TypeName())
		return false
	}
	for _, pv := range pairs {
		items, ok := pv.Items()
		if !ok || len(items) != 2 {
			rt.Raise("ValueError", "expected a (port, value) tuple, got %s", pv.Repr())
			return false
		}
		dst.Append(items[1])
	}
	return true
}

// elapse subtracts the elapsed time e from self.sigma.
func elapse(rt *host.Runtime, self, e *host.Value) *host.Value {
	dt, ok := number(rt, e)
	if !ok {
		return nil
	}
	sigma, ok := floatAttr(self, "sigma")
	if !ok {
		return nil
	}
	setFloat(self, "sigma", math.Max(0, sigma-dt))
	return rt.None()
}

func returnSigma(rt *host.Runtime, args []*host.Value) *host.Value {
	return args[0].GetAttr("sigma")
}

func arity(rt *host.Runtime, name string, args []*host.Value, n int) bool {
	if len(args) != n {
		rt.Raise("TypeError", "%s() takes %d positional arguments but %d were given", name, n, len(args))
		return false
	}
	return true
}

func number(rt *host.Runtime, v *host.Value) (float64, bool) {
	f, ok := v.AsFloat()
	if !ok || v.Kind() == host.KindBool {
		rt.Raise("TypeError", "must be a number, not %s", v.TypeName())
		return 0, false
	}
	return f, true
}

func floatAttr(self *host.Value, name string) (float64, bool) {
	a := self.GetAttr(name)
	if a == nil {
		return 0, false
	}
	defer a.DecRef()
	return number(self.Runtime(), a)
}

func intAttr(self *host.Value, name string) (int64, bool) {
	a := self.GetAttr(name)
	if a == nil {
		return 0, false
	}
	defer a.DecRef()
	i, ok := a.AsInt()
	if !ok {
		self.Runtime().Raise("TypeError", "%s must be an int, not %s", name, a.TypeName())
	}
	return i, ok
}

func setFloat(self *host.Value, name string, f float64) {
	v := self.Runtime().Float(f)
	self.SetAttr(name, v)
	v.DecRef()
}

func setInt(self *host.Value, name string, i int64) {
	v := self.Runtime().Int(i)
	self.SetAttr(name, v)
	v.DecRef()
}
