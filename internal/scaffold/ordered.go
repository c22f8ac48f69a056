package scaffold

import (
	"bytes"
	"encoding/json"
)

// orderedObject is a JSON object that marshals its keys in insertion
// order. encoding/json sorts map keys alphabetically, which would scramble
// the scripts/dependencies sections of the generated package manifest.
type orderedObject struct {
	keys   []string
	values map[string]any
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]any)}
}

// Set inserts or overwrites a key. First insertion fixes the key's position.
func (o *orderedObject) Set(key string, value any) *orderedObject {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// MarshalJSON implements json.Marshaler preserving insertion order.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
