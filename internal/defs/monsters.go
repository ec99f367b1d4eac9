// internal/defs/monsters.go
package defs

// MonsterDefinition holds the stats every spawned monster starts with.
type MonsterDefinition struct {
	Health              float64 `yaml:"health" json:"health"`
	Speed               float64 `yaml:"speed" json:"speed"` // world units per second
	Size                float64 `yaml:"size" json:"size"`
	GoldDrop            uint32  `yaml:"gold_drop" json:"gold_drop"`
	BaseDamagePerSecond float64 `yaml:"base_damage_per_second" json:"base_damage_per_second"`
}

// DefaultMonster returns the stock monster stats.
func DefaultMonster() MonsterDefinition {
	return MonsterDefinition{
		Health:              100,
		Speed:               100,
		Size:                20,
		GoldDrop:            5,
		BaseDamagePerSecond: 10,
	}
}
