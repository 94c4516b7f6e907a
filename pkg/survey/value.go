package survey

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies the JSON type held by a [Value].
type Kind uint8

// JSON value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the JSON name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is a single key-value entry of an [Object].
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered collection of members.
type Object []Member

// Array is an ordered sequence of values.
type Array []Value

// Value is a JSON value of any kind.
//
// The zero Value is null. Arrays and objects share their backing storage
// when a Value is copied, so rewriting an element through one copy is
// visible through all of them.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or number literal
	arr  Array
	obj  Object
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a number value with the given literal text.
// The literal is written back verbatim when the value is encoded.
func Number(n json.Number) Value { return Value{kind: KindNumber, s: string(n)} }

// Int returns an integral number value.
func Int(n int64) Value { return Value{kind: KindNumber, s: strconv.FormatInt(n, 10)} }

// Float returns a number value for f.
// Integral values are written without a fractional part, others in their
// shortest decimal form. Non-finite values have no JSON form and become null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Int(int64(f))
	}
	return Value{kind: KindNumber, s: strconv.FormatFloat(f, 'f', -1, 64)}
}

// NewArray returns an array value holding elems.
func NewArray(elems ...Value) Value {
	if elems == nil {
		elems = Array{}
	}
	return Value{kind: KindArray, arr: elems}
}

// NewObject returns an object value holding members in the given order.
func NewObject(members ...Member) Value {
	if members == nil {
		members = Object{}
	}
	return Value{kind: KindObject, obj: members}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean held by v, and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Str returns the string held by v, and whether v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Literal returns the literal text of a number value, or "" for other kinds.
func (v Value) Literal() json.Number {
	if v.kind != KindNumber {
		return ""
	}
	return json.Number(v.s)
}

// Float64 returns the numeric value of v. It reports false if v is not a
// number or its literal does not fit in a finite float64.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Array returns the elements of v, or nil if v is not an array.
func (v Value) Array() Array {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the members of v, or nil if v is not an object.
func (v Value) Object() Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Get returns the value of the member named key of an object value.
func (v Value) Get(key string) (Value, bool) {
	return v.Object().Get(key)
}

// String renders v as compact JSON.
func (v Value) String() string {
	b, err := Marshal(v, 0)
	if err != nil {
		return "<invalid>"
	}
	// Marshal always terminates the document with a newline.
	return string(b[:len(b)-1])
}

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Value, bool) {
	if i := o.index(key); i >= 0 {
		return o[i].Value, true
	}
	return Value{}, false
}

// Has reports whether o has a member named key.
func (o Object) Has(key string) bool {
	return o.index(key) >= 0
}

// Set replaces the value of the member named key in place. It reports
// false, leaving o unchanged, if there is no such member.
func (o Object) Set(key string, val Value) bool {
	i := o.index(key)
	if i < 0 {
		return false
	}
	o[i].Value = val
	return true
}

// Keys returns the member names in document order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) index(key string) int {
	for i := range o {
		if o[i].Key == key {
			return i
		}
	}
	return -1
}

// Equal reports whether a and b are structurally equal.
// Object members must appear in the same order. Numbers are equal when
// their literals match or they denote the same float64.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindNumber:
		if a.s == b.s {
			return true
		}
		af, aok := a.Float64()
		bf, bok := b.Float64()
		return aok && bok && af == bf
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for i := range a.obj {
			if a.obj[i].Key != b.obj[i].Key || !Equal(a.obj[i].Value, b.obj[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
