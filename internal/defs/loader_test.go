package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll_MissingDirectoryFilesAreIgnored(t *testing.T) {
	loaded, err := LoadAll(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, loaded["enemies.json"])
	assert.Contains(t, EnemyLibrary, "goblin")
}

func TestLoadEnemyDefinitions_OverridesLibrary(t *testing.T) {
	original := EnemyLibrary["goblin"]
	t.Cleanup(func() {
		EnemyLibrary["goblin"] = original
		delete(EnemyLibrary, "slime")
	})

	path := filepath.Join(t.TempDir(), "enemies.json")
	body := `[
		{"id": "goblin", "name": "Big Goblin", "health": 80, "damage": 7, "speed": 100},
		{"id": "slime", "name": "Slime", "health": 20, "damage": 2, "speed": 40, "damage_type": "ice"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	n, err := LoadEnemyDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 80, EnemyLibrary["goblin"].Health)
	assert.Equal(t, DamageIce, EnemyLibrary["slime"].DamageType)
}

func TestLoadCharacterDefinitions_OverridesAndAppends(t *testing.T) {
	original := CharacterLibrary["mage"]
	order := append([]string(nil), CharacterOrder...)
	t.Cleanup(func() {
		CharacterLibrary["mage"] = original
		delete(CharacterLibrary, "paladin")
		CharacterOrder = order
	})

	dir := t.TempDir()
	body := `[
		{"id": "mage", "name": "Arme", "health": 95, "mana": 140, "damage": 9, "speed": 200, "damage_type": "magical"},
		{"id": "paladin", "name": "Ronan", "health": 170, "mana": 60, "damage": 13, "defense": 6, "speed": 210,
		 "skills": [{"id": "holy_strike", "name": "Holy Strike", "mana_cost": 20, "cooldown": 2, "radius": 80}, {}],
		 "color": {"R": 220, "G": 200, "B": 90, "A": 255}}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "characters.json"), []byte(body), 0644))

	loaded, err := LoadAll(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded["characters.json"])

	assert.Equal(t, 140.0, CharacterLibrary["mage"].Mana)
	paladin := CharacterLibrary["paladin"]
	assert.Equal(t, 170, paladin.Health)
	assert.Equal(t, "holy_strike", paladin.Skills[0].ID)
	assert.Equal(t, uint8(220), paladin.Color.R)

	// Перекрытый персонаж не дублируется в порядке выбора
	assert.Equal(t, append(order, "paladin"), CharacterOrder)
}

func TestLoadCharacterDefinitions_MissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Nobody"}]`), 0644))

	_, err := LoadCharacterDefinitions(path)
	assert.Error(t, err)
}

func TestLoadItemDefinitions_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":`), 0644))

	_, err := LoadItemDefinitions(path)
	assert.Error(t, err)
}

func TestDamageTypeMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, DamagePhysical.Multiplier())
	assert.Equal(t, 1.5, DamageFire.Multiplier())
	assert.Equal(t, 1.0, DamageType("unknown").Multiplier())
}

func TestMissionTotalEnemies(t *testing.T) {
	m := MissionLibrary["forest_trail"]
	assert.Equal(t, 10, m.TotalEnemies())
}

func TestItemCategoryEquippable(t *testing.T) {
	assert.True(t, CategoryWeapon.Equippable())
	assert.True(t, CategoryAccessory.Equippable())
	assert.False(t, CategoryConsumable.Equippable())
}
