package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_PressAndEndFrame(t *testing.T) {
	var s Snapshot
	s.Press(Attack)
	assert.True(t, s.Held(Attack))
	assert.True(t, s.JustPressed(Attack))

	s.EndFrame()
	assert.True(t, s.Held(Attack))
	assert.False(t, s.JustPressed(Attack))

	// Повторное нажатие удерживаемой клавиши не даёт нового JustPressed
	s.Press(Attack)
	assert.False(t, s.JustPressed(Attack))

	s.Release(Attack)
	assert.False(t, s.Held(Attack))
	s.Press(Attack)
	assert.True(t, s.JustPressed(Attack))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "grab", Grab.String())
	assert.Equal(t, "sell", Sell.String())
	assert.Equal(t, "unknown", Action(99).String())
}
