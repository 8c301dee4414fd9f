package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	valid := map[PlayerState][]PlayerState{
		StateIdle:   {StateWalk, StateJump, StateAttack, StateDefend, StateGrab, StateCrouch},
		StateJump:   {StateIdle, StateAttack},
		StateAttack: {StateIdle, StateHurt},
		StateHurt:   {StateIdle, StateDead},
	}
	for from, tos := range valid {
		for _, to := range tos {
			assert.True(t, CanTransition(from, to), "%s -> %s should be allowed", from, to)
		}
	}

	invalid := []struct {
		from, to PlayerState
	}{
		{StateJump, StateDefend},
		{StateJump, StateGrab},
		{StateJump, StateCrouch},
		{StateDefend, StateHurt},
		{StateDefend, StateAttack},
		{StateGrab, StateAttack},
		{StateDead, StateIdle},
	}
	for _, tc := range invalid {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestPlayerFSM_Transition(t *testing.T) {
	fsm := PlayerFSM{}
	fsm.Tick(0.5)
	assert.Equal(t, 0.5, fsm.Elapsed)

	assert.True(t, fsm.Transition(StateIdle))
	assert.Equal(t, 0.5, fsm.Elapsed, "same state keeps elapsed time")

	assert.True(t, fsm.Transition(StateJump))
	assert.Equal(t, StateJump, fsm.Current)
	assert.Zero(t, fsm.Elapsed)

	assert.False(t, fsm.Transition(StateGrab))
	assert.Equal(t, StateJump, fsm.Current)

	assert.True(t, fsm.Transition(StateDead))
	assert.False(t, fsm.Transition(StateIdle))
	assert.Equal(t, "dead", fsm.Current.String())
}

func TestStatusEffectsSpeedFactor(t *testing.T) {
	var none *StatusEffects
	assert.Equal(t, 1.0, none.SpeedFactor(0.5))

	s := NewStatusEffects()
	s.Active["freeze"] = &StatusEffect{Type: "freeze", Remaining: 1}
	assert.Equal(t, 0.5, s.SpeedFactor(0.5))
	s.Active["stun"] = &StatusEffect{Type: "stun", Remaining: 1}
	assert.Equal(t, 0.0, s.SpeedFactor(0.5))
}
