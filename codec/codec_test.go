package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string
	Values []float64
}

func TestByName(t *testing.T) {
	for _, name := range []string{"gob", "json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("xml")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	in := sample{Name: "a", Values: []float64{1, 2.5, -3}}

	for _, c := range []Codec{Gob{}, JSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "gob", Default.Name())
}

func TestMustMarshal(t *testing.T) {
	data := MustMarshal(nil, sample{Name: "x"})
	assert.NotEmpty(t, data)

	assert.Panics(t, func() {
		// Channels are not encodable by any codec.
		MustMarshal(JSON{}, make(chan int))
	})
}
