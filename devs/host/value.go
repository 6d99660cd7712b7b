package host

import "fmt"

// Kind is the dynamic type of a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindTuple
	KindList
	KindObject
	KindFunc
)

var kindNames = map[Kind]string{
	KindNone:   "NoneType",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindStr:    "str",
	KindTuple:  "tuple",
	KindList:   "list",
	KindObject: "object",
	KindFunc:   "function",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a reference-counted handle to a host datum.
type Value struct {
	rt       *Runtime
	data     any
	refs     int
	kind     Kind
	immortal bool
}

// Runtime returns the runtime that owns v.
func (v *Value) Runtime() *Runtime { return v.rt }

// Kind returns the dynamic type of v.
func (v *Value) Kind() Kind { return v.kind }

// RefCount returns the number of live references to v.
func (v *Value) RefCount() int { return v.refs }

// IncRef acquires a new reference and returns v.
func (v *Value) IncRef() *Value {
	if v.refs <= 0 && !v.immortal {
		panic(fmt.Sprintf("host: IncRef of released %s value", v.kind))
	}
	v.refs++
	return v
}

// DecRef releases one reference. When the last reference goes away the
// value releases whatever it holds.
func (v *Value) DecRef() {
	if v.refs <= 0 {
		panic(fmt.Sprintf("host: DecRef of released %s value", v.kind))
	}
	v.refs--
	if v.refs > 0 || v.immortal {
		return
	}
	v.rt.live--
	switch d := v.data.(type) {
	case []*Value:
		for _, item := range d {
			item.DecRef()
		}
	case *object:
		d.release()
	case *function:
		if d.self != nil {
			d.self.DecRef()
		}
	}
	v.data = nil
}

// XDecRef releases v if it is not nil.
func XDecRef(v *Value) {
	if v != nil {
		v.DecRef()
	}
}

// TypeName returns the host type name of v: the class name for objects.
func (v *Value) TypeName() string {
	if o, ok := v.data.(*object); ok {
		return o.class.Name
	}
	return v.kind.String()
}

// IsNone reports whether v is None.
func (v *Value) IsNone() bool { return v.kind == KindNone }

// AsInt returns the integer held by v.
func (v *Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.data.(int64), true
	case KindBool:
		if v.data.(bool) {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AsFloat returns the number held by v, converting integers.
func (v *Value) AsFloat() (float64, bool) {
	if v.kind == KindFloat {
		return v.data.(float64), true
	}
	i, ok := v.AsInt()
	return float64(i), ok
}

// AsStr returns the string held by v.
func (v *Value) AsStr() (string, bool) {
	s, ok := v.data.(string)
	return s, ok && v.kind == KindStr
}

// AsBool returns the truth value of v.
func (v *Value) AsBool() bool {
	switch v.kind {
	case KindNone:
		return false
	case KindBool:
		return v.data.(bool)
	case KindInt:
		return v.data.(int64) != 0
	case KindFloat:
		return v.data.(float64) != 0
	case KindStr:
		return v.data.(string) != ""
	case KindTuple, KindList:
		return len(v.data.([]*Value)) > 0
	}
	return true
}

// Items returns the elements of a tuple or list as borrowed references.
func (v *Value) Items() ([]*Value, bool) {
	if v.kind != KindTuple && v.kind != KindList {
		return nil, false
	}
	return v.data.([]*Value), true
}

// Len returns the length of a tuple, list or string, or -1.
func (v *Value) Len() int {
	switch d := v.data.(type) {
	case []*Value:
		return len(d)
	case string:
		return len(d)
	}
	return -1
}

// Append adds item to a list, acquiring a reference to it.
func (v *Value) Append(item *Value) bool {
	if v.kind != KindList {
		return false
	}
	v.data = append(v.data.([]*Value), item.IncRef())
	return true
}

// Data returns the Go payload of v.
func (v *Value) Data() any { return v.data }

// Pop removes and returns item i of a list. The caller owns the returned
// reference. It returns nil with IndexError set if i is out of range.
func (v *Value) Pop(i int) *Value {
	items, ok := v.data.([]*Value)
	if !ok || v.kind != KindList {
		v.rt.Raise("TypeError", "'%s' object has no attribute 'pop'", v.TypeName())
		return nil
	}
	if i < 0 || i >= len(items) {
		v.rt.Raise("IndexError", "pop index out of range")
		return nil
	}
	item := items[i]
	v.data = append(items[:i:i], items[i+1:]...)
	return item
}
