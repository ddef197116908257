package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Fixed-size arrays such as [3]int32 encode as JSON arrays, so a tree of
// points serializes as a list of coordinate tuples: [[1,2,3],[4,5,6]].
// Types with unexported fields need their own MarshalJSON to round-trip.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
