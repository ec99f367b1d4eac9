// internal/defs/towers.go
package defs

import "fmt"

// TowerKind identifies a tower variant. The set is closed: every switch over
// TowerKind must handle all of AllTowerKinds.
type TowerKind string

const (
	TowerBasic TowerKind = "BASIC"
	TowerNinja TowerKind = "NINJA"
)

// AllTowerKinds lists the variants in build-bar order.
var AllTowerKinds = []TowerKind{TowerBasic, TowerNinja}

// Valid reports whether k is a known variant.
func (k TowerKind) Valid() bool {
	for _, known := range AllTowerKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k TowerKind) String() string {
	return string(k)
}

// TowerDefinition holds all the static data for a tower variant.
type TowerDefinition struct {
	Name            string  `yaml:"name" json:"name"`
	Cost            uint32  `yaml:"cost" json:"cost"`
	Range           float64 `yaml:"range" json:"range"`                     // world units
	AttackInterval  float64 `yaml:"attack_interval" json:"attack_interval"` // seconds
	Damage          float64 `yaml:"damage" json:"damage"`
	InitialCooldown float64 `yaml:"initial_cooldown" json:"initial_cooldown"` // seconds until the first attack

	Strong *StrongAttackDef `yaml:"strong_attack,omitempty" json:"strong_attack,omitempty"`
}

// StrongAttackDef describes the Ninja's range-independent random attack.
type StrongAttackDef struct {
	Interval        float64 `yaml:"interval" json:"interval"`
	Damage          float64 `yaml:"damage" json:"damage"`
	InitialCooldown float64 `yaml:"initial_cooldown" json:"initial_cooldown"`
}

// DefaultTowers returns the stock tower library.
func DefaultTowers() map[TowerKind]TowerDefinition {
	return map[TowerKind]TowerDefinition{
		TowerBasic: {
			Name:            "Basic",
			Cost:            10,
			Range:           100,
			AttackInterval:  1.0,
			Damage:          10,
			InitialCooldown: 0,
		},
		TowerNinja: {
			Name:            "Ninja",
			Cost:            20,
			Range:           100,
			AttackInterval:  2.0,
			Damage:          10,
			InitialCooldown: 2.0,
			Strong: &StrongAttackDef{
				Interval:        10.0,
				Damage:          1000,
				InitialCooldown: 5.0,
			},
		},
	}
}

// Validate checks a single definition.
func (d TowerDefinition) Validate(kind TowerKind) error {
	switch {
	case d.Range <= 0:
		return fmt.Errorf("tower %s: range must be positive", kind)
	case d.AttackInterval <= 0:
		return fmt.Errorf("tower %s: attack interval must be positive", kind)
	case d.Damage < 0:
		return fmt.Errorf("tower %s: damage must not be negative", kind)
	case d.InitialCooldown < 0:
		return fmt.Errorf("tower %s: initial cooldown must not be negative", kind)
	}
	if kind == TowerNinja && d.Strong == nil {
		return fmt.Errorf("tower %s: strong attack is required", kind)
	}
	if d.Strong != nil && d.Strong.Interval <= 0 {
		return fmt.Errorf("tower %s: strong attack interval must be positive", kind)
	}
	return nil
}
