package uri

import (
	"slices"
	"strconv"

	"github.com/ghettovoice/uriparse/internal/util"
)

// Value is a query parameter value: a [Scalar] or an [Array].
// The set of implementations is closed.
type Value interface {
	String() string
	Equal(val any) bool

	value()
}

// Scalar is a plain string value, stored decoded.
type Scalar string

func (Scalar) value() {}

func (v Scalar) String() string { return string(v) }

// Equal reports whether val is the same scalar, accepting Scalar and *Scalar.
func (v Scalar) Equal(val any) bool {
	switch o := val.(type) {
	case Scalar:
		return v == o
	case *Scalar:
		return o != nil && v == *o
	default:
		return false
	}
}

// Element is a keyed entry of an [Array].
type Element struct {
	Key   string
	Value Value
}

// Array is an ordered keyed collection produced by the array duplicate policy.
// Keys that are non-negative integers act as list indexes.
type Array []Element

// List builds an [Array] with sequential integer keys from scalar values.
func List(vals ...string) Array {
	arr := make(Array, len(vals))
	for i, v := range vals {
		arr[i] = Element{Key: strconv.Itoa(i), Value: Scalar(v)}
	}
	return arr
}

func (Array) value() {}

// Get returns the value stored under the key.
func (arr Array) Get(key string) (Value, bool) {
	for _, e := range arr {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Values returns the element values in order.
func (arr Array) Values() []Value {
	vals := make([]Value, len(arr))
	for i, e := range arr {
		vals[i] = e.Value
	}
	return vals
}

// IsList reports whether the keys are exactly 0..n-1 in order.
func (arr Array) IsList() bool {
	for i, e := range arr {
		if e.Key != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// String returns a debug form like "[1, 2]" or "[color=red, 0=x]".
func (arr Array) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	list := arr.IsList()
	sb.WriteByte('[')
	for i, e := range arr {
		if i > 0 {
			sb.WriteString(", ")
		}
		if !list {
			sb.WriteString(e.Key)
			sb.WriteByte('=')
		}
		if e.Value != nil {
			sb.WriteString(e.Value.String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether val is an array with equal keys and values in the same order.
func (arr Array) Equal(val any) bool {
	var other Array
	switch o := val.(type) {
	case Array:
		other = o
	case *Array:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return slices.EqualFunc(arr, other, func(e1, e2 Element) bool {
		return e1.Key == e2.Key && valuesEqual(e1.Value, e2.Value)
	})
}

func valuesEqual(v1, v2 Value) bool {
	if v1 == nil || v2 == nil {
		return v1 == nil && v2 == nil
	}
	return v1.Equal(v2)
}

func isIndexKey(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}

// Merge combines a stored value with a repeated one:
// scalar+scalar gives a two element array, array+scalar appends,
// scalar+array prepends and array+array concatenates.
// When concatenating, integer keys are renumbered and other keys of v2 overwrite
// equal keys of v1 in place.
func Merge(v1, v2 Value) Value {
	return mergeArrays(asArray(v1), asArray(v2))
}

func asArray(v Value) Array {
	switch v := v.(type) {
	case Array:
		return v
	case nil:
		return nil
	default:
		return Array{{Key: "0", Value: v}}
	}
}

func mergeArrays(a1, a2 Array) Array {
	out := make(Array, 0, len(a1)+len(a2))
	next := 0
	put := func(e Element) {
		if isIndexKey(e.Key) {
			out = append(out, Element{Key: strconv.Itoa(next), Value: e.Value})
			next++
			return
		}
		if i := slices.IndexFunc(out, func(o Element) bool { return o.Key == e.Key }); i >= 0 {
			out[i].Value = e.Value
			return
		}
		out = append(out, e)
	}
	for _, e := range a1 {
		put(e)
	}
	for _, e := range a2 {
		put(e)
	}
	return out
}

// nestValue wraps v into arrays along the bracket keys, innermost last.
// An empty key becomes index 0.
func nestValue(keys []string, v Value) Value {
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		if k == "" {
			k = "0"
		}
		v = Array{{Key: k, Value: v}}
	}
	return v
}
