// internal/defs/waves.go
package defs

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	EnemyID       string  `json:"enemy_id"`       // Идентификатор врага из EnemyLibrary
	Count         int     `json:"count"`          // Количество врагов в волне
	SpawnInterval float64 `json:"spawn_interval"` // Интервал между появлением врагов, секунды
}

// MissionDefinition миссия: набор волн и награда.
type MissionDefinition struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	RequiredLevel int              `json:"required_level"`
	Waves         []WaveDefinition `json:"waves"`
	RewardExp     int              `json:"reward_exp"`
	RewardGold    int              `json:"reward_gold"`
	Platforms     []PlatformDef    `json:"platforms"`
}

// PlatformDef платформа уровня.
type PlatformDef struct {
	X, Y, W, H float64
}

// TotalEnemies общее число врагов во всех волнах.
func (m MissionDefinition) TotalEnemies() int {
	total := 0
	for _, w := range m.Waves {
		total += w.Count
	}
	return total
}

// MissionLibrary миссии по ID.
var MissionLibrary = map[string]MissionDefinition{
	"forest_trail": {
		ID: "forest_trail", Name: "Forest Trail", RequiredLevel: 1, RewardExp: 80, RewardGold: 100,
		Waves: []WaveDefinition{
			{EnemyID: "goblin", Count: 4, SpawnInterval: 1.5},
			{EnemyID: "goblin", Count: 6, SpawnInterval: 1.0},
		},
		Platforms: []PlatformDef{{X: 400, Y: 380, W: 200, H: 16}, {X: 900, Y: 320, W: 240, H: 16}},
	},
	"orc_camp": {
		ID: "orc_camp", Name: "Orc Camp", RequiredLevel: 2, RewardExp: 180, RewardGold: 220,
		Waves: []WaveDefinition{
			{EnemyID: "goblin", Count: 5, SpawnInterval: 1.0},
			{EnemyID: "orc", Count: 3, SpawnInterval: 2.0},
		},
		Platforms: []PlatformDef{{X: 600, Y: 360, W: 300, H: 16}, {X: 1400, Y: 300, W: 200, H: 16}},
	},
	"bone_crypt": {
		ID: "bone_crypt", Name: "Bone Crypt", RequiredLevel: 3, RewardExp: 320, RewardGold: 400,
		Waves: []WaveDefinition{
			{EnemyID: "skeleton", Count: 6, SpawnInterval: 1.2},
			{EnemyID: "orc", Count: 3, SpawnInterval: 1.5},
			{EnemyID: "skeleton", Count: 8, SpawnInterval: 0.8},
		},
		Platforms: []PlatformDef{{X: 300, Y: 390, W: 180, H: 16}, {X: 800, Y: 330, W: 180, H: 16}, {X: 1300, Y: 270, W: 180, H: 16}},
	},
}

// MissionOrder порядок миссий на доске.
var MissionOrder = []string{"forest_trail", "orc_camp", "bone_crypt"}
