package rowclean

import (
	"bytes"
	"slices"

	"github.com/dmitrymomot/textcanon/pkg/field"
)

// Row is an ordered mapping from field name to value.
// Field order is the order names were first set.
type Row struct {
	names  []string
	values map[string]field.Value
}

// NewRow pairs names with values by position. Names without a value get
// Null; surplus values are dropped. A repeated name keeps its first position
// and its last value.
func NewRow(names []string, values []field.Value) *Row {
	r := &Row{
		names:  make([]string, 0, len(names)),
		values: make(map[string]field.Value, len(names)),
	}
	for i, name := range names {
		v := field.Null()
		if i < len(values) {
			v = values[i]
		}
		r.Set(name, v)
	}
	return r
}

// Get returns the value stored under name.
func (r *Row) Get(name string) (field.Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set stores v under name, appending name if it is new.
func (r *Row) Set(name string, v field.Value) {
	if r.values == nil {
		r.values = make(map[string]field.Value)
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// Names returns the field names in order.
func (r *Row) Names() []string {
	return slices.Clone(r.names)
}

func (r *Row) Len() int {
	return len(r.names)
}

// Clone returns an independent copy of r.
func (r *Row) Clone() *Row {
	out := &Row{
		names:  slices.Clone(r.names),
		values: make(map[string]field.Value, len(r.values)),
	}
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}

// MarshalJSON encodes r as a JSON object with keys in field order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := field.MarshalString(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := r.values[name].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
