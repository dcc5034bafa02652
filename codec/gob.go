package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob is the standard-library gob codec. It is the default because it
// round-trips the full float64 precision of ball centres and radii and
// supports any gob-encodable payload type without tags.
type Gob struct{}

// Marshal encodes the value with encoding/gob.
func (Gob) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the gob data into v.
func (Gob) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Name returns the unique name of the codec ("gob").
func (Gob) Name() string { return "gob" }
