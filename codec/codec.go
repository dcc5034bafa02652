// Package codec centralizes snapshot payload encoding.
//
// Codec selection is a compatibility boundary: snapshots record the
// codec name in their header, and a snapshot written with one codec
// can only be read back by the same codec.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Gob{}

// ByName returns a built-in codec by its stable name.
//
// This is used for self-describing persistence formats that store the
// codec name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "gob":
		return Gob{}, true
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
