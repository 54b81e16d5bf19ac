// Package nullable distinguishes an absent JSON field from an explicit null,
// which partial updates of optional references need.
package nullable

import (
	"bytes"
	"encoding/json"
)

type Int64 struct {
	Set   bool
	Valid bool
	Value int64
}

func (n *Int64) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		n.Value = 0
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when null or absent.
func (n Int64) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Apply overwrites dst when the field was present in the payload.
func (n Int64) Apply(dst **int64) {
	if n.Set {
		*dst = n.Ptr()
	}
}
