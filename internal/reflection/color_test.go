package reflection

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestMixAdditive(t *testing.T) {
	assert.Equal(t, rl.NewColor(255, 255, 0, 255), MixAdditive(rl.NewColor(255, 0, 0, 255), rl.NewColor(0, 255, 0, 200)))
	assert.Equal(t, rl.NewColor(255, 150, 40, 10), MixAdditive(rl.NewColor(200, 100, 20, 5), rl.NewColor(100, 50, 20, 10)))
}

func TestMixAverage(t *testing.T) {
	assert.Equal(t, rl.NewColor(128, 128, 0, 255), MixAverage(rl.NewColor(255, 0, 0, 255), rl.NewColor(0, 255, 0, 255)))
}

func TestColorsClose(t *testing.T) {
	assert.True(t, ColorsClose(rl.NewColor(250, 5, 0, 0), rl.NewColor(255, 0, 0, 255), 5))
	assert.False(t, ColorsClose(rl.NewColor(249, 5, 0, 255), rl.NewColor(255, 0, 0, 255), 5))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "continuing", Continuing.String())
	assert.Equal(t, "target_solved", TargetSolved.String())
	text, err := TargetSolved.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "target_solved", string(text))
}
