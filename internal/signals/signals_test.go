package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignals_Accessors(t *testing.T) {
	s := Signals{
		"flag":    true,
		"off":     false,
		"count":   12,
		"count64": int64(7),
		"decoded": float64(3),
		"text":    "nope",
	}

	assert.True(t, s.Bool("flag"))
	assert.False(t, s.Bool("off"))
	assert.False(t, s.Bool("count"), "non-bool values are not true")
	assert.False(t, s.Bool("missing"))

	assert.Equal(t, 12, s.Int("count"))
	assert.Equal(t, 7, s.Int("count64"))
	assert.Equal(t, 3, s.Int("decoded"))
	assert.Equal(t, 0, s.Int("flag"))
	assert.Equal(t, 0, s.Int("text"))
	assert.Equal(t, 0, s.Int("missing"))

	assert.True(t, s.Has("off"))
	assert.False(t, s.Has("missing"))
}
