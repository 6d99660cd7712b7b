package host

import (
	"reflect"
	goruntime "runtime"
)

// Runtime owns host values and the error indicator. It is not safe for
// concurrent use.
type Runtime struct {
	none      *Value
	trueV     *Value
	falseV    *Value
	live      int
	err       *ErrorState
	formatter Formatter
	frames    []Frame
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithFormatter replaces the traceback formatter.
func WithFormatter(f Formatter) Option {
	return func(rt *Runtime) { rt.formatter = f }
}

// NewRuntime creates an empty runtime.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{formatter: TracebackFormatter{}}
	rt.none = &Value{rt: rt, kind: KindNone, refs: 1, immortal: true}
	rt.trueV = &Value{rt: rt, kind: KindBool, data: true, refs: 1, immortal: true}
	rt.falseV = &Value{rt: rt, kind: KindBool, data: false, refs: 1, immortal: true}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Live returns the number of values with outstanding references, not
// counting None, True and False.
func (rt *Runtime) Live() int { return rt.live }

func (rt *Runtime) newValue(kind Kind, data any) *Value {
	rt.live++
	return &Value{rt: rt, kind: kind, data: data, refs: 1}
}

// None returns a new reference to None.
func (rt *Runtime) None() *Value { return rt.none.IncRef() }

// Bool returns a new reference to True or False.
func (rt *Runtime) Bool(b bool) *Value {
	if b {
		return rt.trueV.IncRef()
	}
	return rt.falseV.IncRef()
}

// Int creates an integer.
func (rt *Runtime) Int(i int64) *Value { return rt.newValue(KindInt, i) }

// Float creates a float.
func (rt *Runtime) Float(f float64) *Value { return rt.newValue(KindFloat, f) }

// Str creates a string.
func (rt *Runtime) Str(s string) *Value { return rt.newValue(KindStr, s) }

// Tuple creates a tuple. The tuple acquires its own reference to each item.
func (rt *Runtime) Tuple(items ...*Value) *Value {
	return rt.newValue(KindTuple, acquireAll(items))
}

// List creates a list. The list acquires its own reference to each item.
func (rt *Runtime) List(items ...*Value) *Value {
	return rt.newValue(KindList, acquireAll(items))
}

func acquireAll(items []*Value) []*Value {
	out := make([]*Value, len(items))
	for i, item := range items {
		out[i] = item.IncRef()
	}
	return out
}

// Func is the Go implementation of a host function. Arguments are borrowed.
// It returns a new reference, or nil after setting the error indicator.
type Func func(rt *Runtime, args []*Value) *Value

type function struct {
	name  string
	fn    Func
	self  *Value
	frame Frame
}

// NewFunc wraps fn as a callable host value.
func (rt *Runtime) NewFunc(name string, fn Func) *Value {
	return rt.newValue(KindFunc, &function{name: name, fn: fn, frame: frameOf(name, fn)})
}

func frameOf(name string, fn Func) Frame {
	f := Frame{Func: name}
	if pc := reflect.ValueOf(fn).Pointer(); pc != 0 {
		if rf := goruntime.FuncForPC(pc); rf != nil {
			f.File, f.Line = rf.FileLine(rf.Entry())
		}
	}
	return f
}

// Call invokes a callable value with borrowed arguments.
func (v *Value) Call(args ...*Value) *Value {
	rt := v.rt
	f, ok := v.data.(*function)
	if !ok {
		rt.Raise("TypeError", "'%s' object is not callable", v.TypeName())
		return nil
	}
	if f.self != nil {
		args = append([]*Value{f.self}, args...)
	}
	rt.frames = append(rt.frames, f.frame)
	defer func() { rt.frames = rt.frames[:len(rt.frames)-1] }()

	res := f.fn(rt, args)
	switch {
	case res == nil && !rt.Occurred():
		rt.Raise("SystemError", "%s returned a result with no value and no error set", f.name)
	case res != nil && rt.Occurred():
		res.DecRef()
		return nil
	}
	return res
}

// CallMethod looks up name on v and calls it with borrowed arguments.
func (v *Value) CallMethod(name string, args ...*Value) *Value {
	m := v.GetAttr(name)
	if m == nil {
		return nil
	}
	defer m.DecRef()
	return m.Call(args...)
}
