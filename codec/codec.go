// Package codec centralizes the encoding of serialized trees.
//
// A serialized tree is a flat list of items in the tree's internal order, so
// decoding restores the layout without rebuilding. Any codec that round-trips
// []T for the caller's item type works.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the built-in codec names.
func Names() []string {
	return []string{"json", "go-json"}
}
