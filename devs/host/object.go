package host

import "sort"

// Class describes a family of host objects. Methods receive the instance as
// args[0].
type Class struct {
	Name    string
	Methods map[string]Func
	// Init, if set, runs on every new instance with the constructor arguments.
	Init Func
}

type object struct {
	class *Class
	attrs map[string]*Value
	state any
}

func (o *object) release() {
	attrs := o.attrs
	o.attrs = nil
	for _, v := range attrs {
		v.DecRef()
	}
}

// NewObject creates an instance of class, running class.Init if present.
// It returns nil with the error indicator set if Init fails.
func (rt *Runtime) NewObject(class *Class, args ...*Value) *Value {
	obj := rt.newValue(KindObject, &object{class: class, attrs: make(map[string]*Value)})
	if class.Init == nil {
		return obj
	}
	ctor := rt.newValue(KindFunc, &function{name: class.Name + ".__init__", fn: class.Init, self: obj.IncRef(), frame: frameOf(class.Name+".__init__", class.Init)})
	defer ctor.DecRef()
	res := ctor.Call(args...)
	if res == nil {
		obj.DecRef()
		return nil
	}
	res.DecRef()
	return obj
}

// State returns the Go state attached to an object.
func (v *Value) State() any {
	if o, ok := v.data.(*object); ok {
		return o.state
	}
	return nil
}

// SetState attaches Go state to an object.
func (v *Value) SetState(state any) {
	if o, ok := v.data.(*object); ok {
		o.state = state
	}
}

// GetAttr returns a new reference to attribute name of v. Instance
// attributes shadow class methods; methods are returned bound to v. It
// returns nil with AttributeError set if the attribute does not exist.
func (v *Value) GetAttr(name string) *Value {
	rt := v.rt
	o, ok := v.data.(*object)
	if !ok {
		rt.Raise("AttributeError", "'%s' object has no attribute '%s'", v.TypeName(), name)
		return nil
	}
	if a, ok := o.attrs[name]; ok {
		return a.IncRef()
	}
	if fn, ok := o.class.Methods[name]; ok {
		qual := o.class.Name + "." + name
		return rt.newValue(KindFunc, &function{name: qual, fn: fn, self: v.IncRef(), frame: frameOf(qual, fn)})
	}
	rt.Raise("AttributeError", "'%s' object has no attribute '%s'", o.class.Name, name)
	return nil
}

// HasAttr reports whether GetAttr would succeed, without touching the error
// indicator.
func (v *Value) HasAttr(name string) bool {
	o, ok := v.data.(*object)
	if !ok {
		return false
	}
	if _, ok := o.attrs[name]; ok {
		return true
	}
	_, ok = o.class.Methods[name]
	return ok
}

// SetAttr binds an instance attribute, acquiring a reference to val and
// releasing any previous binding.
func (v *Value) SetAttr(name string, val *Value) bool {
	o, ok := v.data.(*object)
	if !ok {
		v.rt.Raise("AttributeError", "'%s' object attribute '%s' is read-only", v.TypeName(), name)
		return false
	}
	old := o.attrs[name]
	o.attrs[name] = val.IncRef()
	XDecRef(old)
	return true
}

// DelAttr removes an instance attribute, revealing the class method of the
// same name if there is one.
func (v *Value) DelAttr(name string) {
	if o, ok := v.data.(*object); ok {
		if old, ok := o.attrs[name]; ok {
			delete(o.attrs, name)
			old.DecRef()
		}
	}
}

// AttrNames returns the sorted instance attribute names of an object.
func (v *Value) AttrNames() []string {
	o, ok := v.data.(*object)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(o.attrs))
	for n := range o.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
