package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
//   - JSON snapshots are portable and human-inspectable.
//   - Payload types must be JSON-marshalable; time, complex numbers,
//     funcs, channels, etc. may not be supported.
//   - Floating point values may lose the last bit of precision on some
//     encoders; prefer Gob when exact round-trips matter.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
