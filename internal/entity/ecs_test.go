package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nova-remains/internal/component"
)

func TestNewEntity_IDsAreUnique(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}

func TestRemoveEntity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Healths[id] = &component.Health{Value: 1, Max: 1}
	ecs.Enemies[id] = &component.Enemy{}

	assert.True(t, ecs.Exists(id))
	ecs.RemoveEntity(id)
	assert.False(t, ecs.Exists(id))
	assert.NotContains(t, ecs.Healths, id)
	assert.NotContains(t, ecs.Enemies, id)
}

func TestClearPlatformsKeepsGround(t *testing.T) {
	ecs := NewECS()
	ground := ecs.NewEntity()
	ecs.Platforms[ground] = &component.Platform{Ground: true}
	ledge := ecs.NewEntity()
	ecs.Platforms[ledge] = &component.Platform{}

	ecs.ClearPlatforms()
	assert.Contains(t, ecs.Platforms, ground)
	assert.NotContains(t, ecs.Platforms, ledge)
}
