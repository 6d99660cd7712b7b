package host

import (
	"math"
	"strconv"
	"strings"
)

// String renders v the way str() does.
func (v *Value) String() string {
	if v.kind == KindStr {
		return v.data.(string)
	}
	return v.Repr()
}

// Repr renders v the way repr() does.
func (v *Value) Repr() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindBool:
		if v.data.(bool) {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return formatFloat(v.data.(float64))
	case KindStr:
		return "'" + strings.ReplaceAll(v.data.(string), "'", "\\'") + "'"
	case KindTuple:
		items := v.data.([]*Value)
		if len(items) == 1 {
			return "(" + items[0].Repr() + ",)"
		}
		return "(" + joinRepr(items) + ")"
	case KindList:
		return "[" + joinRepr(v.data.([]*Value)) + "]"
	case KindFunc:
		if f, ok := v.data.(*function); ok {
			return "<function " + f.name + ">"
		}
	case KindObject:
		return "<" + v.TypeName() + " object>"
	}
	return "<released " + v.kind.String() + ">"
}

func joinRepr(items []*Value) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Repr()
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
