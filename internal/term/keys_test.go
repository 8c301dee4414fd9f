package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-remains/internal/input"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Action
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.Left},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Pause},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.Confirm},
		{runeKey('z'), input.Attack},
		{runeKey('Z'), input.Attack},
		{runeKey('k'), input.Skill1},
	}
	for _, tt := range tests {
		got, ok := ActionFor(tt.ev)
		require.True(t, ok, tt.ev.Name())
		assert.Equal(t, tt.want, got, tt.ev.Name())
	}

	_, ok := ActionFor(runeKey('q'))
	assert.False(t, ok)
}

func TestInput_HoldExpires(t *testing.T) {
	in := NewInput()
	var _ input.State = in

	require.True(t, in.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.True(t, in.JustPressed(input.Right))
	assert.True(t, in.Held(input.Right))

	in.EndFrame(0.05)
	assert.False(t, in.JustPressed(input.Right))
	assert.True(t, in.Held(input.Right), "still held inside the window")

	in.EndFrame(0.1)
	assert.False(t, in.Held(input.Right))
}

func TestInput_RepeatExtendsHold(t *testing.T) {
	in := NewInput()
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	in.HandleKey(right)
	in.EndFrame(0.1)
	in.HandleKey(right)
	assert.False(t, in.JustPressed(input.Right), "auto-repeat is not a new press")
	in.EndFrame(0.1)
	assert.True(t, in.Held(input.Right))

	assert.False(t, in.HandleKey(runeKey('q')))
}
