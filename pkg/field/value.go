package field

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindBoolean
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return "null"
	}
}

// Value is an immutable field value: one of Null, Text, Number or Boolean.
// The zero Value is Null.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number wraps a floating-point number.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int wraps an integer. It is stored as a Number.
func Int(n int64) Value { return Value{kind: KindNumber, num: float64(n)} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Of converts an arbitrary Go value into a Value.
// Unknown types become Text using their fmt representation.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Value:
		if x == nil {
			return Null()
		}
		return *x
	case string:
		return Text(x)
	case *string:
		if x == nil {
			return Null()
		}
		return Text(*x)
	case []byte:
		return Text(string(x))
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case fmt.Stringer:
		return Text(x.String())
	default:
		return Text(fmt.Sprint(x))
	}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) IsText() bool    { return v.kind == KindText }
func (v Value) IsNumber() bool  { return v.kind == KindNumber }
func (v Value) IsBoolean() bool { return v.kind == KindBoolean }

// Text returns the wrapped string and true if v is Text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Number returns the wrapped number and true if v is a Number.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Bool returns the wrapped boolean and true if v is a Boolean.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// String returns the canonical text form of v.
// Null renders as "", booleans as "True"/"False", and numbers in their
// shortest decimal form without exponent.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return formatNumber(v.num)
	case KindBoolean:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Truthy reports the generic truthiness of v: empty text, zero and null are false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindText:
		return v.text != ""
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindBoolean:
		return v.b
	default:
		return false
	}
}

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		return v.num == o.num
	case KindBoolean:
		return v.b == o.b
	default:
		return true
	}
}

// MarshalJSON encodes v as null, a string, a number or a bool.
// Text is encoded without HTML escaping so cleaned markup stays readable.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return MarshalString(v.text)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return []byte(formatNumber(v.num)), nil
	case KindBoolean:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null, strings, numbers and bools.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("field: unsupported JSON value %s: %w", data, err)
		}
		*v = Number(f)
	}
	return nil
}

// MarshalString encodes s as a JSON string without escaping <, > and &.
func MarshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
